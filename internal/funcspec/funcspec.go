// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package funcspec

import (
	"context"

	"github.com/voxtool/voxcli/internal/artifact"
)

// Param declares a single function parameter.
type Param struct {
	// Name is the parameter name as exposed on the command line.
	Name string
	// Type is the closed type descriptor for the parameter.
	Type Type
	// Default is the declared default value. A nil default on an optional
	// parameter means "absent".
	Default any
	// HasDefault reports whether Default is meaningful.
	HasDefault bool
	// KeywordOnly forces the parameter to surface as a named option,
	// never as a positional argument.
	KeywordOnly bool
	// Usage is the help text for the parameter.
	Usage string
}

// Args carries the runtime values for one invocation, keyed by parameter
// name. Artifact parameters hold loaded artifacts, scalar parameters hold
// plain Go values. Absent optional parameters have no entry.
type Args map[string]any

// Image returns the image bound to name, or nil if absent.
func (a Args) Image(name string) *artifact.Image {
	v, _ := a[name].(*artifact.Image)
	return v
}

// Transform returns the transform bound to name, or nil if absent.
func (a Args) Transform(name string) *artifact.Transform {
	v, _ := a[name].(*artifact.Transform)
	return v
}

// String returns the string bound to name, or "" if absent.
func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Int returns the integer bound to name, or 0 if absent.
func (a Args) Int(name string) int {
	switch v := a[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

// Float returns the float bound to name, or 0 if absent.
func (a Args) Float(name string) float64 {
	v, _ := a[name].(float64)
	return v
}

// Bool returns the boolean bound to name, or false if absent.
func (a Args) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

// Func is the declarative description of a processing function.
type Func struct {
	// Name is the command name.
	Name string
	// Doc is a one line description used in help text.
	Doc string
	// Params are the declared parameters, in declaration order.
	Params []Param
	// Returns is the declared return type. The zero value means the
	// function returns nothing of interest to the caller.
	Returns Type
	// Call invokes the function with bound argument values.
	Call func(ctx context.Context, args Args) (any, error)
}
