// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	stemStyle    = lipgloss.NewStyle().Bold(true)
	counterStyle = lipgloss.NewStyle().Faint(true)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// WriterReporter renders progress events as styled text lines, one group
// per line, followed by a completion summary.
type WriterReporter struct {
	w io.Writer
}

// NewWriterReporter creates a WriterReporter writing to w.
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{w: w}
}

// Report implements the Reporter interface.
func (r *WriterReporter) Report(event Event) {
	switch event.Type {
	case EventGroupStarted:
		fmt.Fprintf(r.w, "%s Processing %s...\n",
			counterStyle.Render(fmt.Sprintf("[%d/%d]", event.Index, event.Total)),
			stemStyle.Render(event.Stem))
	case EventGroupCompleted:
		if event.Message != "" {
			fmt.Fprintf(r.w, "  %s\n", event.Message)
		}
	case EventBatchCompleted:
		fmt.Fprintf(r.w, "\n%s\n", summaryStyle.Render(event.Message))
	case EventDiagnostic:
		fmt.Fprintf(r.w, "%s\n", event.Message)
	}
}

// Close implements the Reporter interface.
func (r *WriterReporter) Close() {}

// ChannelReporter delivers events over a channel for structured
// consumption. Events are dropped rather than blocking when the buffer is
// full or the reporter is closed.
type ChannelReporter struct {
	ch     chan Event
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// NewChannelReporter creates a ChannelReporter with the given buffer size.
func NewChannelReporter(ctx context.Context, bufferSize int) *ChannelReporter {
	reporterCtx, cancel := context.WithCancel(ctx)

	return &ChannelReporter{
		ch:     make(chan Event, bufferSize),
		ctx:    reporterCtx,
		cancel: cancel,
	}
}

// Report implements the Reporter interface.
func (cr *ChannelReporter) Report(event Event) {
	select {
	case <-cr.ctx.Done():
		return
	default:
	}

	select {
	case cr.ch <- event:
	case <-cr.ctx.Done():
	default:
	}
}

// Close implements the Reporter interface.
func (cr *ChannelReporter) Close() {
	cr.once.Do(func() {
		cr.cancel()
		close(cr.ch)
		cr.wg.Wait()
	})
}

// Listen forwards events to fn on a separate goroutine until the reporter
// is closed.
func (cr *ChannelReporter) Listen(fn func(Event)) {
	cr.wg.Add(1)

	go func() {
		defer cr.wg.Done()

		for {
			select {
			case event, ok := <-cr.ch:
				if !ok {
					return
				}

				fn(event)
			case <-cr.ctx.Done():
				return
			}
		}
	}()
}

// Events returns the read-only event channel for manual consumption.
func (cr *ChannelReporter) Events() <-chan Event {
	return cr.ch
}
