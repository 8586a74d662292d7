// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress defines the progress events emitted during batch
// processing and the reporters that consume them. Batch execution is
// strictly sequential, so events for one group always complete before the
// next group's events begin.
package progress

import "time"

// EventType represents the type of progress event.
type EventType int

const (
	// EventGroupStarted indicates processing of a matched group has begun.
	EventGroupStarted EventType = iota
	// EventGroupCompleted indicates a matched group finished, including
	// any output write.
	EventGroupCompleted
	// EventBatchCompleted indicates the whole batch finished.
	EventBatchCompleted
	// EventDiagnostic carries a "nothing to do" diagnostic for soft batch
	// failures.
	EventDiagnostic
)

// String implements the Stringer interface for EventType.
func (et EventType) String() string {
	switch et {
	case EventGroupStarted:
		return "started"
	case EventGroupCompleted:
		return "completed"
	case EventBatchCompleted:
		return "batch-completed"
	case EventDiagnostic:
		return "diagnostic"
	default:
		return "unknown"
	}
}

// Event is a single progress update from batch execution.
type Event struct {
	// Type indicates what happened.
	Type EventType
	// Stem is the stem key of the group, when the event concerns one.
	Stem string
	// Index is the one-based position of the group in the batch.
	Index int
	// Total is the number of groups in the batch.
	Total int
	// Message is a human readable status line.
	Message string
	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Reporter consumes progress events.
type Reporter interface {
	// Report delivers one event. Implementations must not block batch
	// execution indefinitely.
	Report(event Event)
	// Close signals that no further events will be sent.
	Close()
}

// Discard is a Reporter that drops every event.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(Event) {}
func (discard) Close()       {}
