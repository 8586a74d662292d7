// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batchrun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitStem(t *testing.T) {
	tests := []struct {
		path   string
		stem   string
		suffix string
	}{
		{"brain_001.nii.gz", "brain_001", ".nii.gz"},
		{"scan.png", "scan", ".png"},
		{"/data/in/scan.png", "scan", ".png"},
		{"archive.tar.gz", "archive", ".tar.gz"},
		{"noext", "noext", ""},
		{".bashrc", ".bashrc", ""},
		{".config.yaml", ".config", ".yaml"},
		{"trailing.", "trailing", "."},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			stem, suffix := SplitStem(tc.path)
			assert.Equal(t, tc.stem, stem)
			assert.Equal(t, tc.suffix, suffix)
			assert.Equal(t, tc.stem+tc.suffix, stem+suffix, "stem and suffix must concatenate back to the base name")
		})
	}
}

func TestStemAndSuffix(t *testing.T) {
	assert.Equal(t, "brain_001", Stem("in/brain_001.nii.gz"))
	assert.Equal(t, ".nii.gz", Suffix("in/brain_001.nii.gz"))
}
