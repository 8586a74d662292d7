// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package climaker

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/voxtool/voxcli/internal/artifact"
	"github.com/voxtool/voxcli/internal/ctxlog"
	"github.com/voxtool/voxcli/internal/funcspec"
)

const dirMode = 0o755

// Invoke runs the wrapped function with the supplied argument values.
// Artifact parameters bound to paths are loaded from disk, the function is
// called with loaded artifacts substituted, and a produced artifact is
// persisted to the output path after the overwrite check. When the function
// declares no artifact return, its result is returned unchanged.
func (c *Command) Invoke(ctx context.Context, vals Values) (any, error) {
	force := vals.Bool(ForceFlagName)

	if c.surface.Verbose {
		ctxlog.SetVerbosity(vals.Count(VerboseFlagName))
	}

	args := make(funcspec.Args, len(c.class.Params))

	for _, p := range c.class.Params {
		v, ok := vals[p.Name]
		if !ok {
			continue
		}

		if p.Class != funcspec.ClassArtifact {
			args[p.Name] = v
			continue
		}

		path, _ := v.(string)
		if path == "" {
			// Unset optional artifact.
			continue
		}

		loaded, err := artifact.Load(FS, path, p.Kind)
		if err != nil {
			return nil, err
		}

		args[p.Name] = loaded
	}

	ret, err := c.class.Func.Call(ctx, args)
	if err != nil {
		return nil, err
	}

	if c.surface.Output == nil {
		return ret, nil
	}

	outputPath := vals.Path(c.surface.Output.Name)
	if outputPath == "" || ret == nil {
		// No destination or nothing produced: hand the result back.
		return ret, nil
	}

	produced, ok := ret.(artifact.Artifact)
	if !ok {
		return nil, fmt.Errorf("function %q returned %T, want an artifact", c.class.Func.Name, ret)
	}

	proceed, err := checkOverwrite(FS, outputPath, c.opts.Overwrite, force, c.opts.Prompter)
	if err != nil {
		return nil, err
	}

	if !proceed {
		ctxlog.Warn(ctx, "write cancelled", "path", outputPath)
		return nil, nil
	}

	if c.opts.CreateDirs {
		if dir := filepath.Dir(outputPath); dir != "." {
			if err := FS.MkdirAll(dir, dirMode); err != nil {
				return nil, err
			}
		}
	}

	// Persist by the runtime kind of the produced value, not the declared
	// return kind.
	if err := artifact.Save(FS, produced, outputPath); err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "artifact written", "path", outputPath, "kind", produced.ArtifactKind().String())

	return ret, nil
}
