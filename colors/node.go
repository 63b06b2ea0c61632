// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors assigns the colors used to draw scene graph
// nodes and the gradients used to draw the edges between them.
package colors

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// HueStep is the hue increment between consecutive node ids,
// as a fraction of the full hue circle.
const HueStep = 0.13

// Highlight is the tint applied to the box and wireframe of the
// node currently selected by the pointing ray.
var Highlight = colornames.Yellow

// NodeHue returns the hue for the given node id in [0, 1).
// Negative ids wrap around the hue circle.
func NodeHue(id int) float64 {
	h := math.Mod(float64(id)*HueStep, 1)
	if h < 0 {
		h++
	}
	return h
}

// ForNode returns the fully saturated, full value color for the given
// node id. It depends only on the id, so colors are stable across
// reloads and subsets of the node list.
func ForNode(id int) color.RGBA {
	return fromColorful(colorful.Hsv(NodeHue(id)*360, 1, 1), 255)
}

// WithAlpha returns the given color with its alpha set to the given
// value in [0, 1], as a non-premultiplied color.
func WithAlpha(c color.Color, alpha float32) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = alphaByte(alpha)
	return n
}

// fromColorful converts a go-colorful color to opaque-compatible RGBA
// with the given alpha byte, clamping out-of-gamut components.
func fromColorful(c colorful.Color, a uint8) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, a}
}

func alphaByte(alpha float32) uint8 {
	switch {
	case alpha <= 0:
		return 0
	case alpha >= 1:
		return 255
	}
	return uint8(alpha*255 + 0.5)
}
