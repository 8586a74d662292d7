// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ops

import (
	"context"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/voxtool/voxcli/internal/artifact"
	"github.com/voxtool/voxcli/internal/batchrun"
	"github.com/voxtool/voxcli/internal/funcspec"
	"github.com/voxtool/voxcli/internal/registry"
)

func init() {
	registry.MustRegister(MakeTransform(), defaultOptions(), batchrun.Options{})
	registry.MustRegister(InvertTransform(), defaultOptions(), batchrun.Options{})
	registry.MustRegister(Chain(), defaultOptions(), batchrun.Options{})
	registry.MustRegister(Warp(), defaultOptions(), batchrun.Options{})
}

// MakeTransform returns the transform generator. It has no artifact
// inputs, so the synthesized output parameter is positional.
func MakeTransform() *funcspec.Func {
	return &funcspec.Func{
		Name: "make-transform",
		Doc:  "Create an affine transform from scale, rotation and translation",
		Params: []funcspec.Param{
			{Name: "scale", Type: funcspec.Float(), Default: 1.0, HasDefault: true, Usage: "Uniform scale factor"},
			{Name: "rotate", Type: funcspec.Float(), Default: 0.0, HasDefault: true, Usage: "Rotation in degrees"},
			{Name: "tx", Type: funcspec.Float(), Default: 0.0, HasDefault: true, Usage: "Translation along x"},
			{Name: "ty", Type: funcspec.Float(), Default: 0.0, HasDefault: true, Usage: "Translation along y"},
		},
		Returns: funcspec.Transform(),
		Call: func(_ context.Context, args funcspec.Args) (any, error) {
			scale := args.Float("scale")
			theta := args.Float("rotate") * math.Pi / 180

			cos, sin := math.Cos(theta), math.Sin(theta)

			return &artifact.Transform{
				Matrix: [4]float64{scale * cos, -scale * sin, scale * sin, scale * cos},
				Offset: [2]float64{args.Float("tx"), args.Float("ty")},
			}, nil
		},
	}
}

// InvertTransform returns the transform inversion operation.
func InvertTransform() *funcspec.Func {
	return &funcspec.Func{
		Name: "invert-transform",
		Doc:  "Invert an affine transform",
		Params: []funcspec.Param{
			{Name: "input", Type: funcspec.Transform()},
		},
		Returns: funcspec.Transform(),
		Call: func(_ context.Context, args funcspec.Args) (any, error) {
			return args.Transform("input").Inverse()
		},
	}
}

// Chain returns the transform composition operation: first is applied
// before second.
func Chain() *funcspec.Func {
	return &funcspec.Func{
		Name: "chain",
		Doc:  "Compose two affine transforms",
		Params: []funcspec.Param{
			{Name: "first", Type: funcspec.Transform()},
			{Name: "second", Type: funcspec.Transform()},
		},
		Returns: funcspec.Transform(),
		Call: func(_ context.Context, args funcspec.Args) (any, error) {
			return args.Transform("first").Compose(args.Transform("second")), nil
		},
	}
}

// Warp returns the image resampling operation: each output pixel samples
// the input through the inverse of the transform.
func Warp() *funcspec.Func {
	return &funcspec.Func{
		Name: "warp",
		Doc:  "Resample an image through an affine transform",
		Params: []funcspec.Param{
			{Name: "input", Type: funcspec.Image()},
			{Name: "transform", Type: funcspec.Transform()},
		},
		Returns: funcspec.Image(),
		Call: func(_ context.Context, args funcspec.Args) (any, error) {
			inv, err := args.Transform("transform").Inverse()
			if err != nil {
				return nil, err
			}

			src := imaging.Clone(args.Image("input").Data)
			bounds := src.Bounds()
			dst := image.NewNRGBA(bounds)

			for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
				for x := bounds.Min.X; x < bounds.Max.X; x++ {
					sx, sy := inv.Apply(float64(x), float64(y))

					p := image.Pt(int(math.Round(sx)), int(math.Round(sy)))
					if p.In(bounds) {
						dst.SetNRGBA(x, y, src.NRGBAAt(p.X, p.Y))
					}
				}
			}

			return &artifact.Image{Data: dst}, nil
		},
	}
}
