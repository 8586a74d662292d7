// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batchrun

import (
	"path/filepath"
	"strings"
)

// SplitStem splits a file path's base name into its stem and the
// concatenation of all its suffixes, so that multi-part extensions such as
// "brain_001.nii.gz" yield ("brain_001", ".nii.gz"). The stem and suffix
// always concatenate back to the base name. A leading dot, as in hidden
// files, belongs to the stem.
func SplitStem(path string) (stem, suffix string) {
	name := filepath.Base(path)
	if name == "" {
		return "", ""
	}

	// Skip a leading dot so that ".bashrc" has no suffix.
	i := strings.IndexByte(name[1:], '.')
	if i < 0 {
		return name, ""
	}

	i++

	return name[:i], name[i:]
}

// Stem returns the base name of path with all suffixes removed.
func Stem(path string) string {
	stem, _ := SplitStem(path)
	return stem
}

// Suffix returns the concatenation of all suffixes of path's base name.
func Suffix(path string) string {
	_, suffix := SplitStem(path)
	return suffix
}
