// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package climaker

import (
	"github.com/voxtool/voxcli/internal/artifact"
	"github.com/voxtool/voxcli/internal/funcspec"
)

const (
	// DefaultOutputName is the name of the synthesized output parameter.
	DefaultOutputName = "output"
	// VerboseFlagName is the name of the verbosity count flag.
	VerboseFlagName = "verbose"
	// ForceFlagName is the name of the overwrite force flag.
	ForceFlagName = "force"
)

// ValueKind is the semantic value type of a surface argument or option.
type ValueKind int

const (
	// ValuePath is a filesystem path value.
	ValuePath ValueKind = iota
	// ValueString is a plain string value.
	ValueString
	// ValueInt is an integer value.
	ValueInt
	// ValueFloat is a floating point value.
	ValueFloat
	// ValueBool is a boolean value.
	ValueBool
)

// String implements the Stringer interface for ValueKind.
func (v ValueKind) String() string {
	switch v {
	case ValuePath:
		return "path"
	case ValueString:
		return "string"
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueBool:
		return "bool"
	default:
		return "unknown"
	}
}

// ArgSpec describes one positional argument of the derived surface.
type ArgSpec struct {
	// Name is the argument name.
	Name string
	// Usage is the help text.
	Usage string
	// Value is the semantic value type; positional arguments are always
	// path-valued in practice but the field keeps the surface uniform.
	Value ValueKind
	// Artifact is true when the argument binds an artifact parameter.
	Artifact bool
	// Kind is the artifact kind when Artifact is true.
	Kind artifact.Kind
}

// OptSpec describes one named option of the derived surface.
type OptSpec struct {
	// Name is the option name.
	Name string
	// Usage is the help text.
	Usage string
	// Value is the semantic value type.
	Value ValueKind
	// Required is true when the option must be supplied explicitly.
	Required bool
	// Default is the declared default value, when Required is false and
	// the original parameter carried one.
	Default any
	// Artifact is true when the option binds an artifact parameter.
	Artifact bool
	// Kind is the artifact kind when Artifact is true.
	Kind artifact.Kind
}

// OutputSlot describes the synthesized output parameter on the surface.
type OutputSlot struct {
	// Name is the output parameter name.
	Name string
	// Positional is true when the output surfaces as a positional
	// argument rather than a named option.
	Positional bool
	// Kind is the declared artifact kind of the return value.
	Kind artifact.Kind
}

// Surface is the derived command-line surface: a plain data structure
// consumed by whatever argument parsing layer renders it. It never rewrites
// the function's call signature.
type Surface struct {
	// Name is the command name.
	Name string
	// Doc is the command description.
	Doc string
	// Positionals are the positional arguments in order. When Output is
	// positional it is appended after the input positionals.
	Positionals []ArgSpec
	// Options are the named options.
	Options []OptSpec
	// Output is non-nil when the function returns an artifact.
	Output *OutputSlot
	// Verbose is true when the surface carries a verbosity count flag.
	Verbose bool
	// Force is true when the surface carries a force overwrite flag.
	Force bool
}

// Values carries parsed argument values for one invocation, keyed by
// parameter name. Artifact parameters and the output slot hold path
// strings; scalar options hold their typed values; the force flag and the
// verbosity count use ForceFlagName and VerboseFlagName.
type Values map[string]any

// Path returns the path string bound to name, or "" if absent.
func (v Values) Path(name string) string {
	s, _ := v[name].(string)
	return s
}

// Bool returns the boolean bound to name, or false if absent.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Count returns the integer count bound to name, or 0 if absent.
func (v Values) Count(name string) int {
	n, _ := v[name].(int)
	return n
}

// valueKindFor maps a funcspec type to its surface value kind.
func valueKindFor(t funcspec.Type) ValueKind {
	switch t.Kind() {
	case funcspec.TypeImage, funcspec.TypeTransform:
		return ValuePath
	case funcspec.TypeInt:
		return ValueInt
	case funcspec.TypeFloat:
		return ValueFloat
	case funcspec.TypeBool:
		return ValueBool
	default:
		return ValueString
	}
}
