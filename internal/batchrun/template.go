// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batchrun

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultTemplate is the default output filename template.
const DefaultTemplate = "{stem}{suffix}"

var (
	// ErrUnknownPlaceholder is returned when a template references a
	// placeholder other than {stem}, {suffix} or {name}.
	ErrUnknownPlaceholder = errors.New("unknown template placeholder")
	// ErrUnterminatedPlaceholder is returned when a template opens a
	// placeholder without closing it.
	ErrUnterminatedPlaceholder = errors.New("unterminated template placeholder")
)

// RenderTemplate substitutes the recognized placeholders into an output
// filename template. The stem and suffix come from the file bound to the
// output-stem parameter; name is that file's full base name.
func RenderTemplate(template, stem, suffix, name string) (string, error) {
	var sb strings.Builder

	rest := template

	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			sb.WriteString(rest)
			return sb.String(), nil
		}

		sb.WriteString(rest[:open])
		rest = rest[open:]

		closing := strings.IndexByte(rest, '}')
		if closing < 0 {
			return "", fmt.Errorf("%w: %q", ErrUnterminatedPlaceholder, template)
		}

		switch key := rest[1:closing]; key {
		case "stem":
			sb.WriteString(stem)
		case "suffix":
			sb.WriteString(suffix)
		case "name":
			sb.WriteString(name)
		default:
			return "", fmt.Errorf("%w: {%s}", ErrUnknownPlaceholder, key)
		}

		rest = rest[closing+1:]
	}
}
