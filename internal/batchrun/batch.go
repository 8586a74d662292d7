// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batchrun

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/afero"
	"github.com/voxtool/voxcli/internal/artifact"
	"github.com/voxtool/voxcli/internal/climaker"
	"github.com/voxtool/voxcli/internal/ctxlog"
	"github.com/voxtool/voxcli/internal/funcspec"
	"github.com/voxtool/voxcli/internal/progress"
)

const (
	// OutputDirName is the name of the output directory argument.
	OutputDirName = "output-dir"
	// TemplateFlagName is the name of the output template option.
	TemplateFlagName = "output-template"

	dirMode = 0o755
)

// FS is the filesystem used for file discovery. It defaults to the OS
// filesystem and can be replaced with a mock for testing.
var FS = afero.NewOsFs()

// Options configure the batch generalization of a command.
type Options struct {
	// Template is the output filename template. Defaults to
	// DefaultTemplate.
	Template string
	// StemParam names the artifact parameter that drives output naming.
	// Empty selects the first artifact parameter in declaration order.
	StemParam string
	// Reporter receives progress events. Defaults to progress.Discard.
	Reporter progress.Reporter
	// Globs overrides the default per-kind directory glob patterns.
	Globs map[artifact.Kind]string
}

// BatchCommand wraps a translated command so that artifact parameters
// accept directories of files instead of single files.
type BatchCommand struct {
	cmd       *climaker.Command
	class     *funcspec.Classification
	stemParam string
	template  string
	reporter  progress.Reporter
	globs     map[artifact.Kind]string
	surface   climaker.Surface
}

// Batchify derives the batch command for cmd. Configuration errors, such
// as a function without artifact parameters or a stem parameter override
// that does not name one, are reported here and never at call time.
func Batchify(cmd *climaker.Command, opts Options) (*BatchCommand, error) {
	class := cmd.Classification()

	stemParam, err := class.StemParam(opts.StemParam)
	if err != nil {
		return nil, err
	}

	if opts.Template == "" {
		opts.Template = DefaultTemplate
	}

	if opts.Reporter == nil {
		opts.Reporter = progress.Discard
	}

	b := &BatchCommand{
		cmd:       cmd,
		class:     class,
		stemParam: stemParam,
		template:  opts.Template,
		reporter:  opts.Reporter,
		globs:     opts.Globs,
	}
	b.surface = b.buildSurface(cmd.Surface())

	return b, nil
}

// buildSurface derives the batch surface from the single-call surface:
// artifact parameters become file-or-directory paths, and an output
// directory argument plus a template option are appended when the function
// produces an artifact.
func (b *BatchCommand) buildSurface(single climaker.Surface) climaker.Surface {
	s := climaker.Surface{
		Name:    single.Name,
		Doc:     single.Doc,
		Verbose: single.Verbose,
		Force:   single.Force,
	}

	for _, p := range b.class.Params {
		if p.Class != funcspec.ClassArtifact {
			s.Options = append(s.Options, scalarOptionFrom(single, p.Name))
			continue
		}

		usage := fmt.Sprintf("%s file, or directory globbed by %q", p.Kind, b.glob(p.Kind))

		switch {
		case p.Positional:
			s.Positionals = append(s.Positionals, climaker.ArgSpec{
				Name:     p.Name,
				Usage:    usage,
				Value:    climaker.ValuePath,
				Artifact: true,
				Kind:     p.Kind,
			})
		default:
			s.Options = append(s.Options, climaker.OptSpec{
				Name:     p.Name,
				Usage:    usage + "; optional, matched by stem when a directory",
				Value:    climaker.ValuePath,
				Required: !p.Optional,
				Artifact: true,
				Kind:     p.Kind,
			})
		}
	}

	if b.class.Output != nil {
		s.Output = &climaker.OutputSlot{
			Name:       OutputDirName,
			Positional: true,
			Kind:       b.class.Output.Kind,
		}
		s.Positionals = append(s.Positionals, climaker.ArgSpec{
			Name:  OutputDirName,
			Usage: "Output directory",
			Value: climaker.ValuePath,
		})
		s.Options = append(s.Options, climaker.OptSpec{
			Name:    TemplateFlagName,
			Usage:   "Output filename template. Placeholders: {stem}, {suffix}, {name}",
			Value:   climaker.ValueString,
			Default: b.template,
		})
	}

	return s
}

// scalarOptionFrom copies the named option from the single-call surface.
func scalarOptionFrom(single climaker.Surface, name string) climaker.OptSpec {
	for _, o := range single.Options {
		if o.Name == name {
			return o
		}
	}

	return climaker.OptSpec{Name: name, Value: climaker.ValueString}
}

// Surface returns the derived batch surface.
func (b *BatchCommand) Surface() climaker.Surface {
	return b.surface
}

// Name returns the command name.
func (b *BatchCommand) Name() string {
	return b.surface.Name
}

// group is one matched set of files, keyed by parameter name.
type group map[string]string

// Invoke runs the batch. Empty directories, zero stem matches and zero
// bound inputs are "nothing to do" states: they emit a diagnostic and
// return nil without touching the output directory. Errors from the
// underlying single-call command abort the batch and propagate.
func (b *BatchCommand) Invoke(ctx context.Context, vals climaker.Values) error {
	if b.surface.Verbose {
		ctxlog.SetVerbosity(vals.Count(climaker.VerboseFlagName))
	}

	template := b.template
	if t := vals.Path(TemplateFlagName); t != "" {
		template = t
	}

	single, dirFiles, err := b.partition(vals)
	if err != nil {
		return err
	}

	if !b.diagnose(ctx, single, dirFiles) {
		return nil
	}

	groups, stems := b.match(single, dirFiles)
	if len(groups) == 0 {
		b.diagnostic(ctx, fmt.Sprintf("No matching files found across directory inputs %v", paramNames(dirFiles)))
		return nil
	}

	needsOutput := b.class.Output != nil
	outputDir := vals.Path(OutputDirName)

	if needsOutput {
		if err := FS.MkdirAll(outputDir, dirMode); err != nil {
			return err
		}
	}

	total := len(stems)

	for i, stem := range stems {
		if err := ctx.Err(); err != nil {
			return err
		}

		files := groups[stem]

		driver, ok := files[b.stemParam]
		if !ok {
			ctxlog.Warn(ctx, "group has no file for the output naming parameter", "stem", stem, "param", b.stemParam)
			continue
		}

		b.reporter.Report(progress.Event{
			Type:      progress.EventGroupStarted,
			Stem:      stem,
			Index:     i + 1,
			Total:     total,
			Timestamp: time.Now(),
		})

		callVals := b.singleCallValues(vals, files)

		if needsOutput {
			name, err := RenderTemplate(template, stem, Suffix(driver), filepath.Base(driver))
			if err != nil {
				return err
			}

			callVals[b.cmd.Surface().Output.Name] = filepath.Join(outputDir, name)
		}

		if _, err := b.cmd.Invoke(ctx, callVals); err != nil {
			return err
		}

		completed := progress.Event{
			Type:      progress.EventGroupCompleted,
			Stem:      stem,
			Index:     i + 1,
			Total:     total,
			Timestamp: time.Now(),
		}
		if needsOutput {
			completed.Message = fmt.Sprintf("→ Saved to %s", filepath.Base(callVals.Path(b.cmd.Surface().Output.Name)))
		}

		b.reporter.Report(completed)
	}

	b.reporter.Report(progress.Event{
		Type:      progress.EventBatchCompleted,
		Total:     total,
		Message:   fmt.Sprintf("Completed %d files", total),
		Timestamp: time.Now(),
	})

	return nil
}

// partition splits bound artifact arguments into single files, reused for
// every group, and directories to be expanded. A bound path that is
// neither is fatal.
func (b *BatchCommand) partition(vals climaker.Values) (group, map[string][]string, error) {
	single := make(group)
	dirFiles := make(map[string][]string)

	for _, p := range b.class.ArtifactParams() {
		path := vals.Path(p.Name)
		if path == "" {
			// Unset optional artifact.
			continue
		}

		info, err := FS.Stat(path)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", artifact.ErrNotFound, path)
		}

		if !info.IsDir() {
			single[p.Name] = path
			continue
		}

		matches, err := afero.Glob(FS, filepath.Join(path, b.glob(p.Kind)))
		if err != nil {
			return nil, nil, err
		}

		sort.Strings(matches)

		dirFiles[p.Name] = matches
	}

	return single, dirFiles, nil
}

// diagnose reports the "nothing to do" states. It returns false when the
// batch should stop before doing any work.
func (b *BatchCommand) diagnose(ctx context.Context, single group, dirFiles map[string][]string) bool {
	for param, files := range dirFiles {
		if len(files) == 0 {
			b.diagnostic(ctx, fmt.Sprintf("Warning: no files found for %q matching %s", param, b.globForParam(param)))
			return false
		}
	}

	if len(dirFiles) == 0 && len(single) == 0 {
		b.diagnostic(ctx, "No input files provided")
		return false
	}

	return true
}

// match builds the complete groups and their stable processing order.
// With no directory-bound parameters there is exactly one implicit group
// covering the single files, keyed by the driver file's own stem.
func (b *BatchCommand) match(single group, dirFiles map[string][]string) (map[string]group, []string) {
	groups := make(map[string]group)

	if len(dirFiles) == 0 {
		stem := Stem(single[b.stemParam])

		g := make(group, len(single))
		for param, path := range single {
			g[param] = path
		}

		groups[stem] = g

		return groups, []string{stem}
	}

	stemToFiles := make(map[string]group)

	for param, files := range dirFiles {
		for _, f := range files {
			stem := Stem(f)
			if stemToFiles[stem] == nil {
				stemToFiles[stem] = make(group)
			}

			stemToFiles[stem][param] = f
		}
	}

	var required []string

	for _, p := range b.class.ArtifactParams() {
		if _, bound := dirFiles[p.Name]; bound && !p.Optional {
			required = append(required, p.Name)
		}
	}

	var stems []string

	for stem, files := range stemToFiles {
		if !hasAll(files, required) {
			continue
		}

		g := make(group, len(single)+len(files))
		for param, path := range single {
			g[param] = path
		}

		for param, path := range files {
			g[param] = path
		}

		groups[stem] = g

		stems = append(stems, stem)
	}

	sort.Strings(stems)

	return groups, stems
}

// singleCallValues assembles the values for one delegated invocation:
// the group's file paths, the non-artifact arguments passed through
// unchanged and the force flag.
func (b *BatchCommand) singleCallValues(vals climaker.Values, files group) climaker.Values {
	callVals := make(climaker.Values, len(b.class.Params)+2)

	for _, p := range b.class.Params {
		if p.Class == funcspec.ClassArtifact {
			continue
		}

		if v, ok := vals[p.Name]; ok {
			callVals[p.Name] = v
		}
	}

	for param, path := range files {
		callVals[param] = path
	}

	if b.surface.Force {
		callVals[climaker.ForceFlagName] = vals.Bool(climaker.ForceFlagName)
	}

	return callVals
}

func (b *BatchCommand) diagnostic(ctx context.Context, msg string) {
	ctxlog.Warn(ctx, msg)
	b.reporter.Report(progress.Event{
		Type:      progress.EventDiagnostic,
		Message:   msg,
		Timestamp: time.Now(),
	})
}

func (b *BatchCommand) glob(kind artifact.Kind) string {
	if g, ok := b.globs[kind]; ok {
		return g
	}

	return artifact.DefaultGlob(kind)
}

func (b *BatchCommand) globForParam(name string) string {
	if p, ok := b.class.Param(name); ok {
		return p.Kind.String() + " " + b.glob(p.Kind)
	}

	return ""
}

func hasAll(files group, params []string) bool {
	for _, p := range params {
		if _, ok := files[p]; !ok {
			return false
		}
	}

	return true
}

func paramNames(dirFiles map[string][]string) []string {
	names := make([]string, 0, len(dirFiles))
	for name := range dirFiles {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
