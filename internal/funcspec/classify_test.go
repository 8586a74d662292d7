// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package funcspec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxtool/voxcli/internal/artifact"
)

func nopCall(_ context.Context, _ Args) (any, error) {
	return nil, nil
}

func TestClassifyArtifactParams(t *testing.T) {
	fn := &Func{
		Name: "register",
		Params: []Param{
			{Name: "fixed", Type: Image()},
			{Name: "moving", Type: Image()},
			{Name: "mask", Type: Optional(Image())},
			{Name: "initial", Type: Transform(), KeywordOnly: true},
			{Name: "iterations", Type: Int(), Default: 100, HasDefault: true},
		},
		Returns: Transform(),
		Call:    nopCall,
	}

	c, err := Classify(fn)
	require.NoError(t, err)
	require.Len(t, c.Params, 5)

	fixed := c.Params[0]
	assert.Equal(t, ClassArtifact, fixed.Class)
	assert.Equal(t, artifact.KindImage, fixed.Kind)
	assert.True(t, fixed.Positional)
	assert.False(t, fixed.Optional)

	mask := c.Params[2]
	assert.Equal(t, ClassArtifact, mask.Class)
	assert.True(t, mask.Optional)
	assert.False(t, mask.Positional)

	initial := c.Params[3]
	assert.Equal(t, ClassArtifact, initial.Class)
	assert.Equal(t, artifact.KindTransform, initial.Kind)
	assert.False(t, initial.Positional, "keyword-only parameters are never positional")
	assert.False(t, initial.Optional)

	iterations := c.Params[4]
	assert.Equal(t, ClassScalar, iterations.Class)
	assert.True(t, iterations.Optional)

	require.NotNil(t, c.Output)
	assert.Equal(t, artifact.KindTransform, c.Output.Kind)
	assert.True(t, c.Output.Positional)
}

func TestClassifyOutputPositional(t *testing.T) {
	tests := []struct {
		name       string
		params     []Param
		positional bool
	}{
		{
			name:       "single required artifact input",
			params:     []Param{{Name: "input", Type: Image()}},
			positional: true,
		},
		{
			name: "all artifact inputs keyword-only",
			params: []Param{
				{Name: "a", Type: Image(), KeywordOnly: true},
				{Name: "b", Type: Image(), KeywordOnly: true},
			},
			positional: false,
		},
		{
			name:       "no artifact inputs at all",
			params:     []Param{{Name: "size", Type: Int()}},
			positional: true,
		},
		{
			name:       "only optional artifact inputs",
			params:     []Param{{Name: "seed", Type: Optional(Image())}},
			positional: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Classify(&Func{
				Name:    "op",
				Params:  tc.params,
				Returns: Image(),
				Call:    nopCall,
			})
			require.NoError(t, err)
			require.NotNil(t, c.Output)
			assert.Equal(t, tc.positional, c.Output.Positional)
		})
	}
}

func TestClassifyNoOutputForScalarReturn(t *testing.T) {
	c, err := Classify(&Func{
		Name:    "measure",
		Params:  []Param{{Name: "input", Type: Image()}},
		Returns: Float(),
		Call:    nopCall,
	})
	require.NoError(t, err)
	assert.Nil(t, c.Output)
}

func TestClassifyUnionIsNotArtifact(t *testing.T) {
	c, err := Classify(&Func{
		Name: "op",
		Params: []Param{
			{Name: "source", Type: Optional(Union(Image(), String()))},
		},
		Call: nopCall,
	})
	require.NoError(t, err)

	p := c.Params[0]
	assert.Equal(t, ClassPassThrough, p.Class, "a union with more than one non-absent member keeps its declared form")
}

func TestClassifyArtifactWithInMemoryDefault(t *testing.T) {
	c, err := Classify(&Func{
		Name: "op",
		Params: []Param{
			{Name: "reference", Type: Image(), Default: &artifact.Image{}, HasDefault: true},
		},
		Returns: Image(),
		Call:    nopCall,
	})
	require.NoError(t, err)

	p := c.Params[0]
	assert.Equal(t, ClassArtifact, p.Class)
	assert.False(t, p.Optional, "an in-memory default cannot be expressed as a path")
	assert.False(t, p.Positional)
}

func TestClassifyValidationErrors(t *testing.T) {
	_, err := Classify(&Func{
		Params: []Param{
			{Name: "a", Type: Image()},
			{Name: "a", Type: Image()},
			{Name: "", Type: Int()},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFunc)
	assert.ErrorContains(t, err, "duplicate parameter name")
	assert.ErrorContains(t, err, "no callable")
	assert.ErrorContains(t, err, "empty name")
}

func TestStemParam(t *testing.T) {
	c, err := Classify(&Func{
		Name: "register",
		Params: []Param{
			{Name: "iterations", Type: Int()},
			{Name: "fixed", Type: Image()},
			{Name: "moving", Type: Image()},
		},
		Call: nopCall,
	})
	require.NoError(t, err)

	name, err := c.StemParam("")
	require.NoError(t, err)
	assert.Equal(t, "fixed", name, "default is the first artifact parameter in declaration order")

	name, err = c.StemParam("moving")
	require.NoError(t, err)
	assert.Equal(t, "moving", name)

	_, err = c.StemParam("iterations")
	assert.ErrorIs(t, err, ErrUnknownStemParam)
}

func TestStemParamNoArtifacts(t *testing.T) {
	c, err := Classify(&Func{
		Name:   "gen",
		Params: []Param{{Name: "size", Type: Int()}},
		Call:   nopCall,
	})
	require.NoError(t, err)

	_, err = c.StemParam("")
	assert.ErrorIs(t, err, ErrNoArtifactParams)
}
