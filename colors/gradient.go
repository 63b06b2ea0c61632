// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultEdgeAlpha is the default alpha of edge gradients.
const DefaultEdgeAlpha = 0.8

// Lerp returns the component-wise linear interpolation between
// a and b at parameter t, which is clamped to [0, 1].
// The alpha of the result is interpolated the same way.
func Lerp(a, b color.RGBA, t float32) color.RGBA {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	ca, _ := colorful.MakeColor(opaque(a))
	cb, _ := colorful.MakeColor(opaque(b))
	alpha := float32(a.A) + (float32(b.A)-float32(a.A))*t
	return fromColorful(ca.BlendRgb(cb, float64(t)), uint8(alpha+0.5))
}

// opaque drops the alpha of c so that go-colorful does not
// un-premultiply the components.
func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}

// Gradient is a two-stop linear gradient along an edge, from the
// source node color at t = 0 to the target node color at t = 1,
// with a constant alpha.
type Gradient struct {
	From  color.RGBA
	To    color.RGBA
	Alpha float32
}

// NewGradient returns a new [Gradient] between the given colors.
func NewGradient(from, to color.RGBA, alpha float32) Gradient {
	return Gradient{From: from, To: to, Alpha: alpha}
}

// At returns the gradient color at parameter t in [0, 1].
func (g Gradient) At(t float32) color.NRGBA {
	return WithAlpha(Lerp(g.From, g.To, t), g.Alpha)
}

// String returns a string representation of the gradient.
func (g Gradient) String() string {
	return fmt.Sprintf("%s -> %s @%g", hex(g.From), hex(g.To), g.Alpha)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
