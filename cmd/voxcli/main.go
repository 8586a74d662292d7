// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the voxcli command-line application.
package main

import (
	"context"
	"os"

	"github.com/voxtool/voxcli/cmd"
	"github.com/voxtool/voxcli/internal/ctxlog"
	"github.com/voxtool/voxcli/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	root, err := cmd.New()
	if err != nil {
		ctxlog.Error(ctx, "failed to build commands", "error", err)
		os.Exit(1)
	}

	if err := root.Run(ctx, os.Args); err != nil {
		ctxlog.Error(ctx, "command failed", "error", err)
		os.Exit(1)
	}
}
