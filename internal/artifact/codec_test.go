// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package artifact

import (
	"image"
	"image/color"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *Image {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}

	return &Image{Data: img}
}

func TestImageRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, Save(fs, testImage(), "/out/img.png"))

	loaded, err := Load(fs, "/out/img.png", KindImage)
	require.NoError(t, err)

	img, ok := loaded.(*Image)
	require.True(t, ok)
	assert.Equal(t, KindImage, img.ArtifactKind())
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
}

func TestTransformRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()

	in := &Transform{
		Matrix: [4]float64{0, -1, 1, 0},
		Offset: [2]float64{1.5, -2},
		Center: [2]float64{8, 8},
	}
	require.NoError(t, Save(fs, in, "/out/rot.tfm"))

	loaded, err := Load(fs, "/out/rot.tfm", KindTransform)
	require.NoError(t, err)

	tr, ok := loaded.(*Transform)
	require.True(t, ok)
	assert.Equal(t, in, tr)
}

func TestLoadNotFound(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Load(fs, "/missing.png", KindImage)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Load(fs, "/missing.tfm", KindTransform)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadDecodeError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.png", []byte("not an image"), 0o644))

	_, err := Load(fs, "/bad.png", KindImage)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestSaveUnknownImageFormat(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := Save(fs, testImage(), "/out/img.xyz")
	assert.ErrorIs(t, err, ErrEncode)
}

func TestSaveDispatchesOnRuntimeKind(t *testing.T) {
	fs := afero.NewMemMapFs()

	// The codec does not care what a command declared; it writes whatever
	// artifact it is handed.
	var a Artifact = Identity()
	require.NoError(t, Save(fs, a, "/out/t.tfm"))

	loaded, err := Load(fs, "/out/t.tfm", KindTransform)
	require.NoError(t, err)
	assert.Equal(t, KindTransform, loaded.ArtifactKind())
}
