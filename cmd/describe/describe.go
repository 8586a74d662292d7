// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package describe contains the command that prints the derived
// command-line surface of a registered operation.
package describe

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/voxtool/voxcli/internal/climaker"
	"github.com/voxtool/voxcli/internal/registry"
)

const nameArg = "name"

// Cmd is the command that describes a registered operation's surface.
var Cmd = &cli.Command{
	Name:        "describe",
	Description: "Show the derived command-line surface of an operation as JSON.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      nameArg,
			UsageText: "OPERATION",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Action: func(_ context.Context, cmd *cli.Command) error {
		name := cmd.StringArg(nameArg)
		if name == "" {
			return cli.Exit("Please provide an operation name to describe", 1)
		}

		translated, err := registry.DefaultRegistry.Translate(name)
		if err != nil {
			return err
		}

		return climaker.Describe(cmd.Writer, translated)
	},
}
