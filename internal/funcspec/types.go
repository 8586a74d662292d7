// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package funcspec

import (
	"strings"

	"github.com/voxtool/voxcli/internal/artifact"
)

// TypeKind enumerates the closed set of value categories a parameter or
// return value may carry. The zero value means "no type", which is how a
// function declares that it returns nothing.
type TypeKind int

const (
	// TypeNone is the absence of a type (no return value).
	TypeNone TypeKind = iota
	// TypeImage is an image artifact.
	TypeImage
	// TypeTransform is a transform artifact.
	TypeTransform
	// TypeString is a plain string value.
	TypeString
	// TypeInt is an integer value.
	TypeInt
	// TypeFloat is a floating point value.
	TypeFloat
	// TypeBool is a boolean value.
	TypeBool
	// TypeUnion is a union of two or more non-absent member types.
	TypeUnion
)

// Type is a closed descriptor for a parameter or return type. Optionality
// ("value or absent") is a first class wrapper rather than a union that
// needs introspecting.
type Type struct {
	kind     TypeKind
	optional bool
	members  []Type
}

// None is the absent type, used for functions that return nothing.
func None() Type { return Type{} }

// Image is the image artifact type.
func Image() Type { return Type{kind: TypeImage} }

// Transform is the transform artifact type.
func Transform() Type { return Type{kind: TypeTransform} }

// String is the string scalar type.
func String() Type { return Type{kind: TypeString} }

// Int is the integer scalar type.
func Int() Type { return Type{kind: TypeInt} }

// Float is the float scalar type.
func Float() Type { return Type{kind: TypeFloat} }

// Bool is the boolean scalar type.
func Bool() Type { return Type{kind: TypeBool} }

// Optional wraps t as "t or absent". Wrapping is idempotent: exactly one
// optional layer is ever recorded.
func Optional(t Type) Type {
	t.optional = true
	return t
}

// Union builds a union of two or more non-absent member types. A union is
// never treated as an artifact type, even when one of its members is one;
// it passes through to the surface unchanged.
func Union(members ...Type) Type {
	return Type{kind: TypeUnion, members: members}
}

// Kind returns the type's kind.
func (t Type) Kind() TypeKind { return t.kind }

// IsOptional reports whether the type carries an "or absent" wrapper.
func (t Type) IsOptional() bool { return t.optional }

// IsNone reports whether the type is absent.
func (t Type) IsNone() bool { return t.kind == TypeNone }

// Members returns the union members, or nil for non-union types.
func (t Type) Members() []Type { return t.members }

// ArtifactKind returns the artifact kind for artifact-typed descriptors.
// After stripping the single optional layer, the type must be exactly the
// image or the transform type; unions do not qualify.
func (t Type) ArtifactKind() (artifact.Kind, bool) {
	switch t.kind {
	case TypeImage:
		return artifact.KindImage, true
	case TypeTransform:
		return artifact.KindTransform, true
	default:
		return 0, false
	}
}

// String implements the Stringer interface for Type.
func (t Type) String() string {
	var base string

	switch t.kind {
	case TypeNone:
		base = "none"
	case TypeImage:
		base = "image"
	case TypeTransform:
		base = "transform"
	case TypeString:
		base = "string"
	case TypeInt:
		base = "int"
	case TypeFloat:
		base = "float"
	case TypeBool:
		base = "bool"
	case TypeUnion:
		names := make([]string, len(t.members))
		for i, m := range t.members {
			names[i] = m.String()
		}

		base = "union[" + strings.Join(names, "|") + "]"
	default:
		base = "invalid"
	}

	if t.optional {
		return "optional[" + base + "]"
	}

	return base
}
