// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package artifact

import (
	"errors"
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

var (
	// ErrNotFound is returned when an input artifact file does not exist.
	ErrNotFound = errors.New("artifact file not found")
	// ErrDecode is returned when an artifact file cannot be decoded.
	ErrDecode = errors.New("failed to decode artifact")
	// ErrEncode is returned when an artifact cannot be encoded.
	ErrEncode = errors.New("failed to encode artifact")
)

const (
	// ImageGlob is the default glob pattern for image directories.
	ImageGlob = "*.png"
	// TransformGlob is the default glob pattern for transform directories.
	TransformGlob = "*.tfm"

	outputFileMode = 0o644
)

// DefaultGlob returns the default directory glob pattern for a kind.
func DefaultGlob(k Kind) string {
	if k == KindTransform {
		return TransformGlob
	}

	return ImageGlob
}

// Load reads an artifact of the given kind from path.
// It returns ErrNotFound if the path does not exist.
func Load(fsys afero.Fs, path string, kind Kind) (Artifact, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, err
	}
	defer f.Close() // nolint:errcheck

	switch kind {
	case KindTransform:
		data, err := afero.ReadAll(f)
		if err != nil {
			return nil, err
		}

		t := new(Transform)
		if err := yaml.Unmarshal(data, t); err != nil {
			return nil, errors.Join(ErrDecode, err)
		}

		return t, nil
	default:
		img, err := imaging.Decode(f)
		if err != nil {
			return nil, errors.Join(ErrDecode, err)
		}

		return &Image{Data: img}, nil
	}
}

// Save writes an artifact to path, dispatching on its runtime kind.
func Save(fsys afero.Fs, a Artifact, path string) error {
	switch v := a.(type) {
	case *Transform:
		data, err := yaml.Marshal(v)
		if err != nil {
			return errors.Join(ErrEncode, err)
		}

		return afero.WriteFile(fsys, path, data, outputFileMode)
	case *Image:
		format, err := imaging.FormatFromFilename(path)
		if err != nil {
			return errors.Join(ErrEncode, err)
		}

		f, err := fsys.Create(path)
		if err != nil {
			return err
		}

		if err := imaging.Encode(f, v.Data, format); err != nil {
			f.Close() // nolint:errcheck,gosec
			return errors.Join(ErrEncode, err)
		}

		return f.Close()
	default:
		return fmt.Errorf("%w: unsupported artifact type %T", ErrEncode, a)
	}
}
