// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrIoWrite is returned when a log record cannot be written.
var ErrIoWrite = errors.New("error when writing log output")

// timeFormat is the format used for timestamps in log messages.
const timeFormat = "[15:04:05.000]"

var (
	timeStyle  = lipgloss.NewStyle().Faint(true)
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// PrettyHandler is a slog handler that writes human readable, styled log
// lines with the record attributes rendered as colorized JSON.
type PrettyHandler struct {
	inner  slog.Handler
	buf    *bytes.Buffer
	mu     *sync.Mutex
	writer io.Writer
	json   *colorjson.Formatter
}

// NewPretty creates a PrettyHandler writing to w at the level held by
// level. Color is disabled when w is not a terminal.
func NewPretty(w io.Writer, level slog.Leveler) *PrettyHandler {
	buf := &bytes.Buffer{}
	formatter := colorjson.NewFormatter()
	formatter.Indent = 2
	formatter.DisabledColor = !writerIsTerminal(w)

	return &PrettyHandler{
		inner: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				// Time, level and message are rendered by hand.
				switch a.Key {
				case slog.TimeKey, slog.LevelKey, slog.MessageKey:
					return slog.Attr{}
				default:
					return a
				}
			},
		}),
		buf:    buf,
		mu:     &sync.Mutex{},
		writer: w,
		json:   formatter,
	}
}

// Enabled implements the slog.Handler interface.
func (h *PrettyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyHandler{inner: h.inner.WithAttrs(attrs), buf: h.buf, mu: h.mu, writer: h.writer, json: h.json}
}

// WithGroup implements the slog.Handler interface.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{inner: h.inner.WithGroup(name), buf: h.buf, mu: h.mu, writer: h.writer, json: h.json}
}

// Handle implements the slog.Handler interface.
func (h *PrettyHandler) Handle(ctx context.Context, r slog.Record) error {
	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	parts := []string{
		timeStyle.Render(r.Time.Format(timeFormat)),
		levelStyle(r.Level).Render(r.Level.String() + ":"),
		r.Message,
	}

	if len(attrs) > 0 {
		rendered, err := h.json.Marshal(attrs)
		if err != nil {
			return err
		}

		parts = append(parts, string(rendered))
	}

	if _, err := fmt.Fprintln(h.writer, strings.Join(parts, " ")); err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

// computeAttrs runs the record through the inner JSON handler to obtain
// the fully resolved attribute map.
func (h *PrettyHandler) computeAttrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.mu.Lock()
	defer func() {
		h.buf.Reset()
		h.mu.Unlock()
	}()

	if err := h.inner.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler: %w", err)
	}

	var attrs map[string]any
	if err := json.Unmarshal(h.buf.Bytes(), &attrs); err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler result: %w", err)
	}

	return attrs, nil
}

func levelStyle(level slog.Level) lipgloss.Style {
	switch {
	case level <= slog.LevelDebug:
		return debugStyle
	case level <= slog.LevelInfo:
		return infoStyle
	case level < slog.LevelError:
		return warnStyle
	default:
		return errorStyle
	}
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
