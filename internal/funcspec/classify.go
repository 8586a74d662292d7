// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package funcspec

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/voxtool/voxcli/internal/artifact"
)

var (
	// ErrInvalidFunc is returned when a function description fails validation.
	ErrInvalidFunc = errors.New("invalid function description")
	// ErrNoArtifactParams is returned when an operation requires at least one
	// artifact parameter and the function has none.
	ErrNoArtifactParams = errors.New("function has no image or transform parameters")
	// ErrUnknownStemParam is returned when a stem parameter override does not
	// name an artifact parameter.
	ErrUnknownStemParam = errors.New("stem parameter is not an image or transform parameter")
)

// Class is the derived category of a parameter.
type Class int

const (
	// ClassPassThrough parameters keep their declared form on the surface.
	ClassPassThrough Class = iota
	// ClassScalar parameters surface as plain valued options.
	ClassScalar
	// ClassArtifact parameters are rewritten to accept a file path.
	ClassArtifact
)

// String implements the Stringer interface for Class.
func (c Class) String() string {
	switch c {
	case ClassArtifact:
		return "artifact"
	case ClassScalar:
		return "scalar"
	default:
		return "passthrough"
	}
}

// ParamInfo is the classification of a single parameter.
type ParamInfo struct {
	Param

	// Class is the derived parameter category.
	Class Class
	// Kind is the artifact kind; only meaningful for ClassArtifact.
	Kind artifact.Kind
	// Optional is true when the parameter has a default value or an
	// optional-wrapped type.
	Optional bool
	// Positional is true when the parameter is required, not optional and
	// not keyword-only.
	Positional bool
}

// OutputSpec describes the synthesized output parameter for functions that
// return an artifact.
type OutputSpec struct {
	// Kind is the declared artifact kind of the return value. Persisting
	// still dispatches on the runtime kind of the produced value.
	Kind artifact.Kind
	// Positional is true when any artifact input is positional, or when
	// the function has no artifact inputs at all.
	Positional bool
}

// Classification is the immutable result of classifying a function's
// parameter list. It is computed once at wrap time.
type Classification struct {
	// Func is the described function.
	Func *Func
	// Params holds one entry per declared parameter, in declaration order.
	Params []ParamInfo
	// Output is non-nil when the function returns an artifact.
	Output *OutputSpec
}

// Classify derives the parameter classification for fn. All configuration
// errors in the description are reported here, aggregated, so that nothing
// fails later at call time.
func Classify(fn *Func) (*Classification, error) {
	var errs *multierror.Error

	if fn == nil {
		return nil, fmt.Errorf("%w: nil function", ErrInvalidFunc)
	}

	if fn.Name == "" {
		errs = multierror.Append(errs, errors.New("function name is empty"))
	}

	if fn.Call == nil {
		errs = multierror.Append(errs, errors.New("function has no callable"))
	}

	seen := make(map[string]struct{}, len(fn.Params))
	params := make([]ParamInfo, 0, len(fn.Params))

	hasPositionalArtifact := false
	hasArtifact := false

	for _, p := range fn.Params {
		if p.Name == "" {
			errs = multierror.Append(errs, errors.New("parameter with empty name"))
			continue
		}

		if _, dup := seen[p.Name]; dup {
			errs = multierror.Append(errs, fmt.Errorf("duplicate parameter name %q", p.Name))
			continue
		}

		seen[p.Name] = struct{}{}

		params = append(params, classifyParam(p))

		info := &params[len(params)-1]
		if info.Class == ClassArtifact {
			hasArtifact = true

			if info.Positional {
				hasPositionalArtifact = true
			}
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, errors.Join(ErrInvalidFunc, err)
	}

	c := &Classification{Func: fn, Params: params}

	if kind, ok := fn.Returns.ArtifactKind(); ok {
		c.Output = &OutputSpec{
			Kind: kind,
			// Named output only when every artifact input is keyword-only.
			Positional: hasPositionalArtifact || !hasArtifact,
		}
	}

	return c, nil
}

// classifyParam classifies a single parameter per the derivation rules.
func classifyParam(p Param) ParamInfo {
	info := ParamInfo{Param: p}

	kind, isArtifact := p.Type.ArtifactKind()
	if !isArtifact {
		if p.Type.Kind() == TypeUnion {
			// Unions with more than one non-absent member keep their
			// declared form.
			info.Class = ClassPassThrough
		} else {
			info.Class = ClassScalar
		}

		info.Optional = p.HasDefault || p.Type.IsOptional()

		return info
	}

	info.Class = ClassArtifact
	info.Kind = kind
	// Optional means "absent is a legal value": a nil default or an
	// optional-wrapped type. A non-nil default keeps the parameter
	// required on the surface because the in-memory default cannot be
	// expressed as a path.
	info.Optional = p.Type.IsOptional() || (p.HasDefault && p.Default == nil)
	info.Positional = !p.HasDefault && !info.Optional && !p.KeywordOnly

	return info
}

// ArtifactParams returns the artifact-classified parameters in declaration
// order.
func (c *Classification) ArtifactParams() []ParamInfo {
	var out []ParamInfo

	for _, p := range c.Params {
		if p.Class == ClassArtifact {
			out = append(out, p)
		}
	}

	return out
}

// Param returns the classification for the named parameter.
func (c *Classification) Param(name string) (ParamInfo, bool) {
	for _, p := range c.Params {
		if p.Name == name {
			return p, true
		}
	}

	return ParamInfo{}, false
}

// StemParam resolves the output-naming driver parameter for batch mode.
// An empty override selects the first artifact parameter in declaration
// order; a non-empty override must name an artifact parameter.
func (c *Classification) StemParam(override string) (string, error) {
	artifacts := c.ArtifactParams()
	if len(artifacts) == 0 {
		return "", ErrNoArtifactParams
	}

	if override == "" {
		return artifacts[0].Name, nil
	}

	for _, p := range artifacts {
		if p.Name == override {
			return p.Name, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStemParam, override)
}
