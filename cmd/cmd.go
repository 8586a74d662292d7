// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface for voxcli. The
// operation commands are not written by hand: they are derived from the
// registered function descriptions at startup.
package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"github.com/voxtool/voxcli/cmd/describe"
	"github.com/voxtool/voxcli/internal/progress"
	"github.com/voxtool/voxcli/internal/registry"

	// Import the built in operations to trigger their registration.
	_ "github.com/voxtool/voxcli/internal/ops"
)

// ManifestEnvVar names the environment variable that points at an
// optional YAML manifest with per-command option overrides.
const ManifestEnvVar = "VOXCLI_MANIFEST"

// New builds the root command. Every registered operation gets a
// single-file command and, when it has artifact parameters, a batch
// variant under the "batch" subcommand.
func New() (*cli.Command, error) {
	if manifest := os.Getenv(ManifestEnvVar); manifest != "" {
		if err := registry.DefaultRegistry.LoadManifest(afero.NewOsFs(), manifest); err != nil {
			return nil, err
		}
	}

	singles, err := registry.DefaultRegistry.Commands()
	if err != nil {
		return nil, err
	}

	batches, err := registry.DefaultRegistry.BatchCommands(progress.NewWriterReporter(os.Stdout))
	if err != nil {
		return nil, err
	}

	commands := append(singles, &cli.Command{
		Name:        "batch",
		Description: "Run an operation over directories of files, matching inputs by filename stem.",
		Usage:       "voxcli batch invert inputs/ outputs/",
		Commands:    batches,
	}, describe.Cmd)

	return &cli.Command{
		Name: "voxcli",
		Description: `Voxcli turns ordinary image and transform processing functions into
command-line tools. Artifact parameters become file path arguments with
automatic loading and saving, and every operation has a batch variant that
matches same-named files across input directories by filename stem.`,
		Usage:                 "voxcli invert input.png output.png",
		Commands:              commands,
		Writer:                os.Stdout,
		ErrWriter:             os.Stderr,
		EnableShellCompletion: true,
	}, nil
}
