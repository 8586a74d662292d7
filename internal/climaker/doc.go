// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package climaker translates a declaratively described processing function
// into a command-line surface. Artifact parameters become file path
// arguments, optional parameters become named options and a synthesized
// output parameter is appended when the function returns an artifact. The
// produced Command loads inputs from disk, invokes the function and persists
// the result, applying the configured overwrite policy.
package climaker
