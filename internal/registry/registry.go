// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package registry holds the set of registered processing functions and
// builds their single-call and batch command-line commands.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"
	"github.com/voxtool/voxcli/internal/batchrun"
	"github.com/voxtool/voxcli/internal/climaker"
	"github.com/voxtool/voxcli/internal/funcspec"
	"github.com/voxtool/voxcli/internal/progress"
)

var (
	// ErrDuplicateCommand is returned when a function name is registered
	// twice.
	ErrDuplicateCommand = errors.New("command is already registered")
	// ErrUnknownCommand is returned when a command name is not registered.
	ErrUnknownCommand = errors.New("unknown command")
)

// Entry is one registered function with its translation and batch options.
type Entry struct {
	// Func is the declarative function description.
	Func *funcspec.Func
	// Options configure the single-call translation.
	Options climaker.Options
	// Batch configures the batch generalization. Functions without
	// artifact parameters have no batch variant.
	Batch batchrun.Options
}

// Registry maps command names to their entries.
type Registry map[string]*Entry

// DefaultRegistry is the registry the built in operations register into.
var DefaultRegistry = make(Registry)

// Register adds fn to the default registry.
func Register(fn *funcspec.Func, opts climaker.Options, batch batchrun.Options) error {
	return DefaultRegistry.Add(fn, opts, batch)
}

// MustRegister adds fn to the default registry and panics on error. It is
// intended for use from package init functions.
func MustRegister(fn *funcspec.Func, opts climaker.Options, batch batchrun.Options) {
	if err := Register(fn, opts, batch); err != nil {
		panic(err)
	}
}

// Add adds fn to the registry.
func (r Registry) Add(fn *funcspec.Func, opts climaker.Options, batch batchrun.Options) error {
	if fn == nil || fn.Name == "" {
		return fmt.Errorf("%w: function has no name", ErrUnknownCommand)
	}

	if _, exists := r[fn.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, fn.Name)
	}

	r[fn.Name] = &Entry{Func: fn, Options: opts, Batch: batch}

	return nil
}

// Names returns the registered command names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Translate builds the translated single-call command for name.
func (r Registry) Translate(name string) (*climaker.Command, error) {
	entry, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	return climaker.Translate(entry.Func, entry.Options)
}

// Commands builds the single-call commands for every registered function,
// in name order.
func (r Registry) Commands() ([]*cli.Command, error) {
	cmds := make([]*cli.Command, 0, len(r))

	for _, name := range r.Names() {
		cmd, err := r.Translate(name)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", name, err)
		}

		cmds = append(cmds, cmd.CLI())
	}

	return cmds, nil
}

// BatchCommands builds the batch commands for every registered function
// that has at least one artifact parameter, in name order. The reporter
// receives progress events from every batch command.
func (r Registry) BatchCommands(reporter progress.Reporter) ([]*cli.Command, error) {
	var cmds []*cli.Command

	for _, name := range r.Names() {
		entry := r[name]

		cmd, err := climaker.Translate(entry.Func, entry.Options)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", name, err)
		}

		batchOpts := entry.Batch
		if batchOpts.Reporter == nil {
			batchOpts.Reporter = reporter
		}

		batch, err := batchrun.Batchify(cmd, batchOpts)
		if err != nil {
			if errors.Is(err, funcspec.ErrNoArtifactParams) {
				// Pure generators have no batch variant.
				continue
			}

			return nil, fmt.Errorf("command %q: %w", name, err)
		}

		cmds = append(cmds, batch.CLI())
	}

	return cmds, nil
}
