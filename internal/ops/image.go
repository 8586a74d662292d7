// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ops

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/voxtool/voxcli/internal/artifact"
	"github.com/voxtool/voxcli/internal/batchrun"
	"github.com/voxtool/voxcli/internal/climaker"
	"github.com/voxtool/voxcli/internal/ctxlog"
	"github.com/voxtool/voxcli/internal/funcspec"
	"github.com/voxtool/voxcli/internal/registry"
)

// ErrUnknownFilter is returned when a resample filter name is not
// recognized.
var ErrUnknownFilter = errors.New("unknown resample filter")

func defaultOptions() climaker.Options {
	opts := climaker.DefaultOptions()
	opts.Verbose = true
	opts.Overwrite = climaker.OverwritePrompt

	return opts
}

func init() {
	registry.MustRegister(Invert(), defaultOptions(), batchrun.Options{})
	registry.MustRegister(Blur(), defaultOptions(), batchrun.Options{})
	registry.MustRegister(Resize(), defaultOptions(), batchrun.Options{})
	registry.MustRegister(Overlay(), defaultOptions(), batchrun.Options{})
	registry.MustRegister(Cutout(), defaultOptions(), batchrun.Options{})
	registry.MustRegister(Stats(), defaultOptions(), batchrun.Options{})
}

// Invert returns the color inversion operation.
func Invert() *funcspec.Func {
	return &funcspec.Func{
		Name: "invert",
		Doc:  "Invert the colors of an image",
		Params: []funcspec.Param{
			{Name: "input", Type: funcspec.Image()},
		},
		Returns: funcspec.Image(),
		Call: func(_ context.Context, args funcspec.Args) (any, error) {
			img := args.Image("input")
			return &artifact.Image{Data: imaging.Invert(img.Data)}, nil
		},
	}
}

// Blur returns the gaussian blur operation.
func Blur() *funcspec.Func {
	return &funcspec.Func{
		Name: "blur",
		Doc:  "Apply a gaussian blur to an image",
		Params: []funcspec.Param{
			{Name: "input", Type: funcspec.Image()},
			{Name: "sigma", Type: funcspec.Float(), Default: 1.5, HasDefault: true, Usage: "Blur strength"},
		},
		Returns: funcspec.Image(),
		Call: func(_ context.Context, args funcspec.Args) (any, error) {
			img := args.Image("input")
			sigma := args.Float("sigma")

			return &artifact.Image{Data: imaging.Blur(img.Data, sigma)}, nil
		},
	}
}

// Resize returns the resize operation. Width and height have no defaults,
// so both surface as required named options.
func Resize() *funcspec.Func {
	return &funcspec.Func{
		Name: "resize",
		Doc:  "Resize an image to the given dimensions",
		Params: []funcspec.Param{
			{Name: "input", Type: funcspec.Image()},
			{Name: "width", Type: funcspec.Int(), Usage: "Target width in pixels"},
			{Name: "height", Type: funcspec.Int(), Usage: "Target height in pixels"},
			{Name: "filter", Type: funcspec.String(), Default: "lanczos", HasDefault: true, Usage: "Resample filter: lanczos, linear, box or nearest"},
		},
		Returns: funcspec.Image(),
		Call: func(_ context.Context, args funcspec.Args) (any, error) {
			filter, err := resampleFilter(args.String("filter"))
			if err != nil {
				return nil, err
			}

			img := args.Image("input")
			resized := imaging.Resize(img.Data, args.Int("width"), args.Int("height"), filter)

			return &artifact.Image{Data: resized}, nil
		},
	}
}

// Overlay returns the overlay operation: a second image composited over a
// base image. With two directory inputs the batch layer matches base and
// overlay files by stem.
func Overlay() *funcspec.Func {
	return &funcspec.Func{
		Name: "overlay",
		Doc:  "Composite an overlay image onto a base image",
		Params: []funcspec.Param{
			{Name: "base", Type: funcspec.Image()},
			{Name: "overlay", Type: funcspec.Image()},
			{Name: "opacity", Type: funcspec.Float(), Default: 0.5, HasDefault: true, Usage: "Overlay opacity between 0 and 1"},
		},
		Returns: funcspec.Image(),
		Call: func(_ context.Context, args funcspec.Args) (any, error) {
			base := args.Image("base")
			over := args.Image("overlay")

			merged := imaging.Overlay(base.Data, over.Data, image.Pt(0, 0), args.Float("opacity"))

			return &artifact.Image{Data: merged}, nil
		},
	}
}

// Cutout returns the masking operation. The mask is an optional artifact:
// pixels where the mask is darker than the threshold become transparent,
// and without a mask the image passes through unchanged.
func Cutout() *funcspec.Func {
	return &funcspec.Func{
		Name: "cutout",
		Doc:  "Make pixels transparent where a mask image is dark",
		Params: []funcspec.Param{
			{Name: "input", Type: funcspec.Image()},
			{Name: "mask", Type: funcspec.Optional(funcspec.Image()), Usage: "Mask image; dark pixels are cut out"},
			{Name: "threshold", Type: funcspec.Int(), Default: 128, HasDefault: true, Usage: "Mask luminance cut off"},
		},
		Returns: funcspec.Image(),
		Call: func(_ context.Context, args funcspec.Args) (any, error) {
			input := args.Image("input")

			mask := args.Image("mask")
			if mask == nil {
				return &artifact.Image{Data: imaging.Clone(input.Data)}, nil
			}

			return &artifact.Image{Data: applyMask(input.Data, mask.Data, args.Int("threshold"))}, nil
		},
	}
}

// Stats returns the statistics operation, which produces no artifact.
func Stats() *funcspec.Func {
	return &funcspec.Func{
		Name: "stats",
		Doc:  "Print the dimensions of an image",
		Params: []funcspec.Param{
			{Name: "input", Type: funcspec.Image()},
		},
		Call: func(ctx context.Context, args funcspec.Args) (any, error) {
			bounds := args.Image("input").Bounds()

			ctxlog.Info(ctx, "image stats", "width", bounds.Dx(), "height", bounds.Dy())

			return fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()), nil
		},
	}
}

// applyMask clears the alpha channel of every pixel whose mask luminance
// falls below the threshold.
func applyMask(src, mask image.Image, threshold int) *image.NRGBA {
	out := imaging.Clone(src)
	gray := imaging.Grayscale(mask)

	bounds := out.Bounds()
	maskBounds := gray.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			mx, my := x-bounds.Min.X+maskBounds.Min.X, y-bounds.Min.Y+maskBounds.Min.Y
			if !image.Pt(mx, my).In(maskBounds) {
				continue
			}

			if int(gray.NRGBAAt(mx, my).R) < threshold {
				px := out.NRGBAAt(x, y)
				px.A = 0
				out.SetNRGBA(x, y, px)
			}
		}
	}

	return out
}

// resampleFilter maps a filter name onto its imaging filter.
func resampleFilter(name string) (imaging.ResampleFilter, error) {
	switch name {
	case "lanczos", "":
		return imaging.Lanczos, nil
	case "linear":
		return imaging.Linear, nil
	case "box":
		return imaging.Box, nil
	case "nearest":
		return imaging.NearestNeighbor, nil
	default:
		return imaging.ResampleFilter{}, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
}
