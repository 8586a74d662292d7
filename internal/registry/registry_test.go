// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxtool/voxcli/internal/batchrun"
	"github.com/voxtool/voxcli/internal/climaker"
	"github.com/voxtool/voxcli/internal/funcspec"
	"github.com/voxtool/voxcli/internal/progress"
)

func testFunc(name string, params ...funcspec.Param) *funcspec.Func {
	return &funcspec.Func{
		Name:    name,
		Params:  params,
		Returns: funcspec.Image(),
		Call: func(context.Context, funcspec.Args) (any, error) {
			return nil, nil
		},
	}
}

func TestRegistryAdd(t *testing.T) {
	r := make(Registry)

	fn := testFunc("invert", funcspec.Param{Name: "input", Type: funcspec.Image()})
	require.NoError(t, r.Add(fn, climaker.Options{}, batchrun.Options{}))

	err := r.Add(fn, climaker.Options{}, batchrun.Options{})
	assert.ErrorIs(t, err, ErrDuplicateCommand)

	err = r.Add(nil, climaker.Options{}, batchrun.Options{})
	assert.Error(t, err)
}

func TestRegistryNamesSorted(t *testing.T) {
	r := make(Registry)
	for _, name := range []string{"warp", "blur", "invert"} {
		require.NoError(t, r.Add(
			testFunc(name, funcspec.Param{Name: "input", Type: funcspec.Image()}),
			climaker.Options{}, batchrun.Options{}))
	}

	assert.Equal(t, []string{"blur", "invert", "warp"}, r.Names())
}

func TestRegistryTranslate(t *testing.T) {
	r := make(Registry)
	require.NoError(t, r.Add(
		testFunc("invert", funcspec.Param{Name: "input", Type: funcspec.Image()}),
		climaker.Options{}, batchrun.Options{}))

	cmd, err := r.Translate("invert")
	require.NoError(t, err)
	assert.Equal(t, "invert", cmd.Name())

	_, err = r.Translate("nope")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRegistryBatchCommandsSkipGenerators(t *testing.T) {
	r := make(Registry)
	require.NoError(t, r.Add(
		testFunc("invert", funcspec.Param{Name: "input", Type: funcspec.Image()}),
		climaker.Options{}, batchrun.Options{}))
	require.NoError(t, r.Add(
		testFunc("make-noise", funcspec.Param{Name: "size", Type: funcspec.Int()}),
		climaker.Options{}, batchrun.Options{}))

	singles, err := r.Commands()
	require.NoError(t, err)
	assert.Len(t, singles, 2)

	batches, err := r.BatchCommands(progress.Discard)
	require.NoError(t, err)
	require.Len(t, batches, 1, "a function without artifact parameters has no batch variant")
	assert.Equal(t, "invert", batches[0].Name)
}
