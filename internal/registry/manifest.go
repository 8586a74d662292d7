// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package registry

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
	"github.com/voxtool/voxcli/internal/artifact"
	"github.com/voxtool/voxcli/internal/climaker"
)

// ErrManifest is returned when a manifest cannot be read or applied.
var ErrManifest = errors.New("failed to load command manifest")

// Manifest carries per-command option overrides loaded from YAML.
type Manifest struct {
	Commands map[string]ManifestEntry `yaml:"commands"`
}

// ManifestEntry overrides the options of one registered command. Empty
// fields leave the registered value alone.
type ManifestEntry struct {
	// Output renames the synthesized output parameter.
	Output string `yaml:"output,omitempty"`
	// Overwrite selects the overwrite policy: always, deny or prompt.
	Overwrite string `yaml:"overwrite,omitempty"`
	// Template overrides the batch output filename template.
	Template string `yaml:"template,omitempty"`
	// StemParam overrides the batch output naming parameter.
	StemParam string `yaml:"stem_param,omitempty"`
	// ImageGlob overrides the image directory glob pattern.
	ImageGlob string `yaml:"image_glob,omitempty"`
	// TransformGlob overrides the transform directory glob pattern.
	TransformGlob string `yaml:"transform_glob,omitempty"`
}

// LoadManifest reads a YAML manifest and applies its overrides to the
// registry. Overrides naming unregistered commands are configuration
// errors.
func (r Registry) LoadManifest(fsys afero.Fs, path string) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return errors.Join(ErrManifest, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return errors.Join(ErrManifest, err)
	}

	return r.Apply(m)
}

// Apply applies manifest overrides to the registry.
func (r Registry) Apply(m Manifest) error {
	for name, override := range m.Commands {
		entry, ok := r[name]
		if !ok {
			return fmt.Errorf("%w: %s: %w", ErrManifest, name, ErrUnknownCommand)
		}

		if override.Output != "" {
			entry.Options.OutputName = override.Output
		}

		if override.Overwrite != "" {
			policy, err := climaker.ParsePolicy(override.Overwrite)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrManifest, name, err)
			}

			entry.Options.Overwrite = policy
		}

		if override.Template != "" {
			entry.Batch.Template = override.Template
		}

		if override.StemParam != "" {
			entry.Batch.StemParam = override.StemParam
		}

		if override.ImageGlob != "" || override.TransformGlob != "" {
			if entry.Batch.Globs == nil {
				entry.Batch.Globs = make(map[artifact.Kind]string, 2)
			}

			if override.ImageGlob != "" {
				entry.Batch.Globs[artifact.KindImage] = override.ImageGlob
			}

			if override.TransformGlob != "" {
				entry.Batch.Globs[artifact.KindTransform] = override.TransformGlob
			}
		}
	}

	return nil
}
