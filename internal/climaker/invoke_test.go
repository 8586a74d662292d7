// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package climaker

import (
	"context"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxtool/voxcli/internal/artifact"
	"github.com/voxtool/voxcli/internal/funcspec"
)

// stubPrompter answers every confirmation the same way.
type stubPrompter struct {
	answer bool
	asked  int
}

func (p *stubPrompter) Confirm(string) (bool, error) {
	p.asked++
	return p.answer, nil
}

func invertFunc() *funcspec.Func {
	return &funcspec.Func{
		Name: "invert-transform",
		Params: []funcspec.Param{
			{Name: "input", Type: funcspec.Transform()},
		},
		Returns: funcspec.Transform(),
		Call: func(_ context.Context, args funcspec.Args) (any, error) {
			return args.Transform("input").Inverse()
		},
	}
}

func stubInvokeFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	t.Cleanup(gostub.Stub(&FS, fs).Reset)

	return fs
}

func writeTransform(t *testing.T, fs afero.Fs, path string, tr *artifact.Transform) {
	t.Helper()

	data, err := yaml.Marshal(tr)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, path, data, 0o644))
}

func TestInvokeLoadsCallsAndSaves(t *testing.T) {
	fs := stubInvokeFs(t)
	writeTransform(t, fs, "/in/scale.tfm", &artifact.Transform{Matrix: [4]float64{2, 0, 0, 2}})

	cmd, err := Translate(invertFunc(), Options{})
	require.NoError(t, err)

	ret, err := cmd.Invoke(context.Background(), Values{
		"input":  "/in/scale.tfm",
		"output": "/out/inverse.tfm",
	})
	require.NoError(t, err)
	require.NotNil(t, ret)

	data, err := afero.ReadFile(fs, "/out/inverse.tfm")
	require.NoError(t, err)

	saved := new(artifact.Transform)
	require.NoError(t, yaml.Unmarshal(data, saved))
	assert.Equal(t, [4]float64{0.5, 0, 0, 0.5}, saved.Matrix)
}

func TestInvokeMissingInput(t *testing.T) {
	stubInvokeFs(t)

	cmd, err := Translate(invertFunc(), Options{})
	require.NoError(t, err)

	_, err = cmd.Invoke(context.Background(), Values{
		"input":  "/in/missing.tfm",
		"output": "/out/x.tfm",
	})
	assert.ErrorIs(t, err, artifact.ErrNotFound)
}

func TestInvokeNoOutputSlotReturnsResult(t *testing.T) {
	fs := stubInvokeFs(t)
	writeTransform(t, fs, "/in/t.tfm", artifact.Identity())

	cmd, err := Translate(&funcspec.Func{
		Name: "determinant",
		Params: []funcspec.Param{
			{Name: "input", Type: funcspec.Transform()},
		},
		Returns: funcspec.Float(),
		Call: func(_ context.Context, args funcspec.Args) (any, error) {
			m := args.Transform("input").Matrix
			return m[0]*m[3] - m[1]*m[2], nil
		},
	}, Options{})
	require.NoError(t, err)

	ret, err := cmd.Invoke(context.Background(), Values{"input": "/in/t.tfm"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, ret)
}

func TestInvokeEmptyOutputPathSkipsWrite(t *testing.T) {
	fs := stubInvokeFs(t)
	writeTransform(t, fs, "/in/t.tfm", artifact.Identity())

	cmd, err := Translate(invertFunc(), Options{})
	require.NoError(t, err)

	ret, err := cmd.Invoke(context.Background(), Values{"input": "/in/t.tfm"})
	require.NoError(t, err)
	assert.NotNil(t, ret, "the produced artifact is still handed back")

	exists, err := afero.DirExists(fs, "/out")
	require.NoError(t, err)
	assert.False(t, exists, "nothing may be written without a destination")
}

func TestInvokeCreatesParentDirectories(t *testing.T) {
	fs := stubInvokeFs(t)
	writeTransform(t, fs, "/in/t.tfm", artifact.Identity())

	cmd, err := Translate(invertFunc(), Options{CreateDirs: true})
	require.NoError(t, err)

	_, err = cmd.Invoke(context.Background(), Values{
		"input":  "/in/t.tfm",
		"output": "/out/deeply/nested/t.tfm",
	})
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "/out/deeply/nested/t.tfm")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestInvokeOverwriteDeny(t *testing.T) {
	fs := stubInvokeFs(t)
	writeTransform(t, fs, "/in/t.tfm", artifact.Identity())
	require.NoError(t, afero.WriteFile(fs, "/out/t.tfm", []byte("old"), 0o644))

	cmd, err := Translate(invertFunc(), Options{Overwrite: OverwriteDeny})
	require.NoError(t, err)

	vals := Values{
		"input":  "/in/t.tfm",
		"output": "/out/t.tfm",
	}

	_, err = cmd.Invoke(context.Background(), vals)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutputExists)

	// The existing file is untouched.
	data, err := afero.ReadFile(fs, "/out/t.tfm")
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	// The force flag bypasses the policy.
	vals[ForceFlagName] = true

	_, err = cmd.Invoke(context.Background(), vals)
	require.NoError(t, err)

	data, err = afero.ReadFile(fs, "/out/t.tfm")
	require.NoError(t, err)
	assert.NotEqual(t, "old", string(data))
}

func TestInvokeOverwritePrompt(t *testing.T) {
	fs := stubInvokeFs(t)
	writeTransform(t, fs, "/in/t.tfm", artifact.Identity())
	require.NoError(t, afero.WriteFile(fs, "/out/t.tfm", []byte("old"), 0o644))

	prompter := &stubPrompter{answer: false}

	cmd, err := Translate(invertFunc(), Options{Overwrite: OverwritePrompt, Prompter: prompter})
	require.NoError(t, err)

	vals := Values{
		"input":  "/in/t.tfm",
		"output": "/out/t.tfm",
	}

	// A declined prompt discards the result without error.
	ret, err := cmd.Invoke(context.Background(), vals)
	require.NoError(t, err)
	assert.Nil(t, ret)
	assert.Equal(t, 1, prompter.asked)

	data, err := afero.ReadFile(fs, "/out/t.tfm")
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	// An affirmative answer proceeds.
	prompter.answer = true

	ret, err = cmd.Invoke(context.Background(), vals)
	require.NoError(t, err)
	assert.NotNil(t, ret)

	data, err = afero.ReadFile(fs, "/out/t.tfm")
	require.NoError(t, err)
	assert.NotEqual(t, "old", string(data))
}

func TestInvokePromptSkippedWhenOutputNew(t *testing.T) {
	fs := stubInvokeFs(t)
	writeTransform(t, fs, "/in/t.tfm", artifact.Identity())

	prompter := &stubPrompter{answer: false}

	cmd, err := Translate(invertFunc(), Options{Overwrite: OverwritePrompt, Prompter: prompter})
	require.NoError(t, err)

	_, err = cmd.Invoke(context.Background(), Values{
		"input":  "/in/t.tfm",
		"output": "/out/new.tfm",
	})
	require.NoError(t, err)
	assert.Zero(t, prompter.asked, "no confirmation needed when the output does not exist")
}

func TestInvokeOptionalArtifactAbsent(t *testing.T) {
	fs := stubInvokeFs(t)
	writeTransform(t, fs, "/in/t.tfm", artifact.Identity())

	var sawMask bool

	cmd, err := Translate(&funcspec.Func{
		Name: "op",
		Params: []funcspec.Param{
			{Name: "input", Type: funcspec.Transform()},
			{Name: "mask", Type: funcspec.Optional(funcspec.Transform())},
		},
		Returns: funcspec.Transform(),
		Call: func(_ context.Context, args funcspec.Args) (any, error) {
			sawMask = args.Transform("mask") != nil
			return args.Transform("input"), nil
		},
	}, Options{})
	require.NoError(t, err)

	_, err = cmd.Invoke(context.Background(), Values{
		"input":  "/in/t.tfm",
		"output": "/out/t.tfm",
	})
	require.NoError(t, err)
	assert.False(t, sawMask)
}

func TestInvokeWrongReturnType(t *testing.T) {
	fs := stubInvokeFs(t)
	writeTransform(t, fs, "/in/t.tfm", artifact.Identity())

	cmd, err := Translate(&funcspec.Func{
		Name: "broken",
		Params: []funcspec.Param{
			{Name: "input", Type: funcspec.Transform()},
		},
		Returns: funcspec.Transform(),
		Call: func(context.Context, funcspec.Args) (any, error) {
			return 42, nil
		},
	}, Options{})
	require.NoError(t, err)

	_, err = cmd.Invoke(context.Background(), Values{
		"input":  "/in/t.tfm",
		"output": "/out/t.tfm",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "want an artifact")
}
