// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker listens for OS termination signals. The first
// signal cancels the context so that a running batch stops cleanly between
// groups; a second signal terminates the process immediately.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/voxtool/voxcli/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New creates a channel that receives the OS signals that should
// terminate the process.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker listening", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Watch monitors the signal channel. The first signal cancels the
// context; the second terminates the process.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	received := false

	for sig := range sigCh {
		if received {
			ctxlog.Error(ctx, "second signal received, terminating", "signal", sig.String())
			os.Exit(1)
		}

		ctxlog.Warn(ctx, "signal received, stopping after the current file", "signal", sig.String())
		received = true

		cancel()
	}
}
