// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package artifact

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrUnknownKind is returned when a kind string cannot be parsed.
	ErrUnknownKind = errors.New("unknown artifact kind")
)

// Kind identifies the category of an artifact.
type Kind int

const (
	// KindImage is a raster image artifact.
	KindImage Kind = iota
	// KindTransform is an affine transform artifact.
	KindTransform
)

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindTransform:
		return "transform"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind string as produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "image":
		return KindImage, nil
	case "transform":
		return KindTransform, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Artifact is a value that can be loaded from and saved to a file.
// The codec dispatches on the runtime kind, not on any declared kind,
// so a command may be declared to return one kind and produce the other.
type Artifact interface {
	ArtifactKind() Kind
}

// Image is an in-memory raster image artifact.
type Image struct {
	Data image.Image
}

// ArtifactKind implements the Artifact interface.
func (*Image) ArtifactKind() Kind {
	return KindImage
}

// Bounds returns the pixel bounds of the underlying image.
func (i *Image) Bounds() image.Rectangle {
	return i.Data.Bounds()
}

// Transform is an in-memory 2D affine transform artifact.
// Points map as p' = Matrix*(p-Center) + Center + Offset.
type Transform struct {
	Matrix [4]float64 `yaml:"matrix"`
	Offset [2]float64 `yaml:"offset"`
	Center [2]float64 `yaml:"center"`
}

// ArtifactKind implements the Artifact interface.
func (*Transform) ArtifactKind() Kind {
	return KindTransform
}

// Identity returns the identity transform.
func Identity() *Transform {
	return &Transform{Matrix: [4]float64{1, 0, 0, 1}}
}

// Apply maps the point (x, y) through the transform.
func (t *Transform) Apply(x, y float64) (float64, float64) {
	cx, cy := x-t.Center[0], y-t.Center[1]
	nx := t.Matrix[0]*cx + t.Matrix[1]*cy + t.Center[0] + t.Offset[0]
	ny := t.Matrix[2]*cx + t.Matrix[3]*cy + t.Center[1] + t.Offset[1]

	return nx, ny
}

// Compose returns the transform equivalent to applying t first and then u.
func (t *Transform) Compose(u *Transform) *Transform {
	// Collapse both to the form p' = A*p + b before multiplying.
	at, bt := t.collapse()
	au, bu := u.collapse()

	return &Transform{
		Matrix: [4]float64{
			au[0]*at[0] + au[1]*at[2],
			au[0]*at[1] + au[1]*at[3],
			au[2]*at[0] + au[3]*at[2],
			au[2]*at[1] + au[3]*at[3],
		},
		Offset: [2]float64{
			au[0]*bt[0] + au[1]*bt[1] + bu[0],
			au[2]*bt[0] + au[3]*bt[1] + bu[1],
		},
	}
}

// Inverse returns the inverse transform, or an error if the matrix is
// singular.
func (t *Transform) Inverse() (*Transform, error) {
	a, b := t.collapse()

	det := a[0]*a[3] - a[1]*a[2]
	if det == 0 {
		return nil, errors.New("transform is not invertible")
	}

	inv := [4]float64{a[3] / det, -a[1] / det, -a[2] / det, a[0] / det}

	return &Transform{
		Matrix: inv,
		Offset: [2]float64{
			-(inv[0]*b[0] + inv[1]*b[1]),
			-(inv[2]*b[0] + inv[3]*b[1]),
		},
	}, nil
}

// collapse rewrites the centered form into p' = A*p + b.
func (t *Transform) collapse() ([4]float64, [2]float64) {
	a := t.Matrix
	b := [2]float64{
		t.Center[0] + t.Offset[0] - a[0]*t.Center[0] - a[1]*t.Center[1],
		t.Center[1] + t.Offset[1] - a[2]*t.Center[0] - a[3]*t.Center[1],
	}

	return a, b
}
