// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package climaker

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/voxtool/voxcli/internal/funcspec"
)

// FS is the filesystem used for artifact I/O. It defaults to the OS
// filesystem and can be replaced with a mock for testing.
var FS = afero.NewOsFs()

// Options configure the translation of a function into a Command.
type Options struct {
	// OutputName is the name of the synthesized output parameter.
	// Defaults to DefaultOutputName.
	OutputName string
	// CreateDirs creates missing parent directories for output files.
	CreateDirs bool
	// Overwrite is the overwrite policy for output files.
	Overwrite Policy
	// Verbose appends a verbosity count flag to the surface.
	Verbose bool
	// Prompter confirms overwrites under OverwritePrompt. Defaults to a
	// terminal prompter.
	Prompter Prompter
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		OutputName: DefaultOutputName,
		CreateDirs: true,
		Overwrite:  OverwriteAlways,
		Prompter:   LinerPrompter{},
	}
}

// Command is a function together with its derived command-line surface.
type Command struct {
	class   *funcspec.Classification
	surface Surface
	opts    Options
}

// Translate classifies fn and derives its command-line surface. All
// configuration errors surface here; Invoke never fails on description
// problems.
func Translate(fn *funcspec.Func, opts Options) (*Command, error) {
	if opts.OutputName == "" {
		opts.OutputName = DefaultOutputName
	}

	if opts.Prompter == nil {
		opts.Prompter = LinerPrompter{}
	}

	class, err := funcspec.Classify(fn)
	if err != nil {
		return nil, err
	}

	return &Command{
		class:   class,
		surface: buildSurface(class, opts),
		opts:    opts,
	}, nil
}

// buildSurface derives the surface from a classification.
func buildSurface(class *funcspec.Classification, opts Options) Surface {
	s := Surface{
		Name:    class.Func.Name,
		Doc:     class.Func.Doc,
		Verbose: opts.Verbose,
		Force:   opts.Overwrite != OverwriteAlways,
	}

	for _, p := range class.Params {
		switch {
		case p.Class == funcspec.ClassArtifact && p.Positional:
			s.Positionals = append(s.Positionals, ArgSpec{
				Name:     p.Name,
				Usage:    usageOr(p.Usage, fmt.Sprintf("Path to input %s", p.Kind)),
				Value:    ValuePath,
				Artifact: true,
				Kind:     p.Kind,
			})
		case p.Class == funcspec.ClassArtifact:
			s.Options = append(s.Options, artifactOption(p))
		default:
			s.Options = append(s.Options, scalarOption(p))
		}
	}

	if class.Output != nil {
		s.Output = &OutputSlot{
			Name:       opts.OutputName,
			Positional: class.Output.Positional,
			Kind:       class.Output.Kind,
		}

		if s.Output.Positional {
			s.Positionals = append(s.Positionals, ArgSpec{
				Name:     s.Output.Name,
				Usage:    fmt.Sprintf("Path to output %s", class.Output.Kind),
				Value:    ValuePath,
				Artifact: true,
				Kind:     class.Output.Kind,
			})
		} else {
			s.Options = append(s.Options, OptSpec{
				Name:     s.Output.Name,
				Usage:    fmt.Sprintf("Path to output %s", class.Output.Kind),
				Value:    ValuePath,
				Artifact: true,
				Kind:     class.Output.Kind,
			})
		}
	}

	return s
}

// artifactOption derives the named option for a non-positional artifact
// parameter.
func artifactOption(p funcspec.ParamInfo) OptSpec {
	usage := usageOr(p.Usage, fmt.Sprintf("Path to input %s", p.Kind))
	if p.HasDefault && p.Default != nil {
		// The in-memory default cannot round-trip through a path, so the
		// option must still be supplied explicitly.
		usage += " (required: the declared default cannot be expressed as a path)"
	}

	return OptSpec{
		Name:     p.Name,
		Usage:    usage,
		Value:    ValuePath,
		Required: !p.Optional,
		Artifact: true,
		Kind:     p.Kind,
	}
}

// scalarOption derives the named option for a scalar or pass-through
// parameter. Required parameters must be supplied explicitly; defaulted
// parameters keep their original default.
func scalarOption(p funcspec.ParamInfo) OptSpec {
	spec := OptSpec{
		Name:     p.Name,
		Usage:    p.Usage,
		Value:    valueKindFor(p.Type),
		Required: !p.HasDefault && !p.Type.IsOptional(),
	}

	if p.HasDefault {
		spec.Default = p.Default
	}

	return spec
}

func usageOr(usage, fallback string) string {
	if usage != "" {
		return usage
	}

	return fallback
}

// Surface returns the derived command-line surface.
func (c *Command) Surface() Surface {
	return c.surface
}

// Classification returns the parameter classification.
func (c *Command) Classification() *funcspec.Classification {
	return c.class
}

// Name returns the command name.
func (c *Command) Name() string {
	return c.surface.Name
}
