// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package climaker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/TylerBrock/colorjson"
)

// ErrDescribe is returned when a surface cannot be rendered for display.
var ErrDescribe = errors.New("failed to describe command surface")

// surfaceDoc is the JSON shape of a described surface.
type surfaceDoc struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Positionals []argDoc       `json:"positionals,omitempty"`
	Options     []optDoc       `json:"options,omitempty"`
	Output      *outputSlotDoc `json:"output,omitempty"`
	Verbose     bool           `json:"verbose_flag"`
	Force       bool           `json:"force_flag"`
}

type argDoc struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Kind  string `json:"artifact_kind,omitempty"`
}

type optDoc struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Required bool   `json:"required"`
	Default  any    `json:"default,omitempty"`
	Kind     string `json:"artifact_kind,omitempty"`
}

type outputSlotDoc struct {
	Name       string `json:"name"`
	Positional bool   `json:"positional"`
	Kind       string `json:"artifact_kind"`
}

// Describe writes the command's derived surface to w as indented,
// colorized JSON.
func Describe(w io.Writer, c *Command) error {
	s := c.Surface()

	doc := surfaceDoc{
		Name:        s.Name,
		Description: s.Doc,
		Verbose:     s.Verbose,
		Force:       s.Force,
	}

	for _, a := range s.Positionals {
		d := argDoc{Name: a.Name, Value: a.Value.String()}
		if a.Artifact {
			d.Kind = a.Kind.String()
		}

		doc.Positionals = append(doc.Positionals, d)
	}

	for _, o := range s.Options {
		d := optDoc{
			Name:     o.Name,
			Value:    o.Value.String(),
			Required: o.Required,
			Default:  o.Default,
		}
		if o.Artifact {
			d.Kind = o.Kind.String()
		}

		doc.Options = append(doc.Options, d)
	}

	if s.Output != nil {
		doc.Output = &outputSlotDoc{
			Name:       s.Output.Name,
			Positional: s.Output.Positional,
			Kind:       s.Output.Kind.String(),
		}
	}

	// colorjson formats generic JSON values, so round-trip the document
	// through encoding/json first.
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Join(ErrDescribe, err)
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return errors.Join(ErrDescribe, err)
	}

	formatter := colorjson.NewFormatter()
	formatter.Indent = 2

	pretty, err := formatter.Marshal(obj)
	if err != nil {
		return errors.Join(ErrDescribe, err)
	}

	_, err = fmt.Fprintln(w, string(pretty))

	return err
}
