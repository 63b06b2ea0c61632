// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	assert.Equal(t, red, Lerp(red, blue, 0))
	assert.Equal(t, blue, Lerp(red, blue, 1))
	assert.Equal(t, red, Lerp(red, blue, -2))
	assert.Equal(t, blue, Lerp(red, blue, 3))
	assert.Equal(t, color.RGBA{128, 0, 128, 255}, Lerp(red, blue, 0.5))
	assert.Equal(t, color.RGBA{191, 0, 64, 255}, Lerp(red, blue, 0.25))
}

func TestGradient(t *testing.T) {
	g := NewGradient(ForNode(0), ForNode(1), DefaultEdgeAlpha)
	assert.Equal(t, color.NRGBA{255, 0, 0, 204}, g.At(0))
	assert.Equal(t, color.NRGBA{255, 199, 0, 204}, g.At(1))
	mid := g.At(0.5)
	assert.Equal(t, uint8(255), mid.R)
	assert.InDelta(t, 100, int(mid.G), 1)
	assert.Equal(t, uint8(204), mid.A)
	assert.Equal(t, "#ff0000 -> #ffc700 @0.8", g.String())
}
