// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package funcspec describes processing functions declaratively: a named
// parameter list with closed type descriptors, a return type and a Go
// callable. The Classify function derives from such a description which
// parameters are artifact-valued, which are optional and which surface as
// positional arguments, so that the climaker and batchrun packages can build
// a command-line surface without any runtime reflection.
package funcspec
