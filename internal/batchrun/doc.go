// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package batchrun generalizes a translated single-file command into a
// directory batch command. Every artifact parameter accepts either a single
// file, reused across the whole batch, or a directory whose contents are
// globbed by the parameter's kind and matched across directories by
// filename stem. Each matched group is delegated back to the single-call
// command, with the output filename derived from a template.
package batchrun
