// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package climaker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/afero"
)

var (
	// ErrOutputExists is returned when the output path exists and the
	// overwrite policy forbids replacing it.
	ErrOutputExists = errors.New("output file already exists")
	// ErrUnknownPolicy is returned when a policy string cannot be parsed.
	ErrUnknownPolicy = errors.New("unknown overwrite policy")
)

// Policy controls what happens when an output path already exists.
type Policy int

const (
	// OverwriteAlways replaces existing output without any check.
	OverwriteAlways Policy = iota
	// OverwriteDeny fails when the output exists, unless forced.
	OverwriteDeny
	// OverwritePrompt asks for confirmation when the output exists,
	// unless forced.
	OverwritePrompt
)

// String implements the Stringer interface for Policy.
func (p Policy) String() string {
	switch p {
	case OverwriteAlways:
		return "always"
	case OverwriteDeny:
		return "deny"
	case OverwritePrompt:
		return "prompt"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy string as produced by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "always", "":
		return OverwriteAlways, nil
	case "deny":
		return OverwriteDeny, nil
	case "prompt":
		return OverwritePrompt, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Prompter requests interactive confirmation before overwriting a file.
type Prompter interface {
	// Confirm asks the question and reports whether the answer was
	// affirmative. Any non-affirmative answer, including an aborted
	// prompt, means no.
	Confirm(question string) (bool, error)
}

// LinerPrompter confirms overwrites on the terminal using liner.
type LinerPrompter struct{}

// Confirm implements the Prompter interface.
func (LinerPrompter) Confirm(question string) (bool, error) {
	line := liner.NewLiner()
	defer func() {
		_ = line.Close()
	}()

	line.SetCtrlCAborts(true)

	input, err := line.Prompt(question + " [y/N]: ")
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return false, nil
		}

		return false, err
	}

	return isAffirmative(input), nil
}

func isAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// checkOverwrite applies the policy to an output path. It reports whether
// the write should proceed. A declined prompt is not an error: the write is
// skipped and the result discarded.
func checkOverwrite(fsys afero.Fs, path string, policy Policy, force bool, prompter Prompter) (bool, error) {
	if policy == OverwriteAlways || force {
		return true, nil
	}

	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return false, err
	}

	if !exists {
		return true, nil
	}

	if policy == OverwriteDeny {
		return false, fmt.Errorf("%w: %s (use --%s to overwrite)", ErrOutputExists, path, ForceFlagName)
	}

	ok, err := prompter.Confirm(fmt.Sprintf("Output %s exists. Overwrite?", path))
	if err != nil {
		return false, err
	}

	return ok, nil
}
