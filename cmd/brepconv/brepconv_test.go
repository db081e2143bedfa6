// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArgsTrailingOption(t *testing.T) {
	conv, err := parseArgs(io.Discard, []string{"model.brep", "-o", "out.step"})
	assert.NoError(t, err)
	assert.Equal(t, "model.brep", conv.Source)
	assert.Equal(t, "out.step", conv.Dest)
	assert.Equal(t, "brep", conv.Format)
}

func TestParseArgsLeadingOption(t *testing.T) {
	conv, err := parseArgs(io.Discard, []string{"-f", "step", "model.dat"})
	assert.NoError(t, err)
	assert.Equal(t, "step", conv.Format)
	assert.Equal(t, "model.brep", conv.Dest)
}

func TestParseArgsDefaults(t *testing.T) {
	conv, err := parseArgs(io.Discard, []string{"part.step"})
	assert.NoError(t, err)
	assert.Equal(t, "part.brep", conv.Dest)
	assert.Equal(t, "step", conv.Format)
}

func TestParseArgsErrors(t *testing.T) {
	_, err := parseArgs(io.Discard, nil)
	assert.Error(t, err)

	_, err = parseArgs(io.Discard, []string{"model.xyz"})
	assert.Error(t, err)

	_, err = parseArgs(io.Discard, []string{"-f", "iges", "model.dat"})
	assert.Error(t, err)

	_, err = parseArgs(io.Discard, []string{"a.brep", "b.brep"})
	assert.Error(t, err)
}
