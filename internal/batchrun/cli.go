// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batchrun

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/voxtool/voxcli/internal/climaker"
)

// CLI renders the batch surface into a urfave/cli command whose action
// collects the parsed values and runs the batch.
func (b *BatchCommand) CLI() *cli.Command {
	return climaker.NewCLICommand(b.surface, func(ctx context.Context, parsed *cli.Command) error {
		vals, err := climaker.CollectValues(b.surface, parsed)
		if err != nil {
			return err
		}

		return b.Invoke(ctx, vals)
	})
}
