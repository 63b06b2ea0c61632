// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Quat is quaternion with X,Y,Z and W components.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// NewQuatIdentity returns the identity quaternion.
func NewQuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromSlice returns a new quaternion from a slice of four
// components in X, Y, Z, W order. It returns an error if the
// slice does not have exactly four elements.
func QuatFromSlice(s []float32) (Quat, error) {
	if len(s) != 4 {
		return Quat{}, fmt.Errorf("math32.QuatFromSlice: need 4 values, got %d", len(s))
	}
	return Quat{s[0], s[1], s[2], s[3]}, nil
}

// String returns a string representation of the quaternion.
func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// SetIdentity sets this quanternion to the identity quaternion.
func (q *Quat) SetIdentity() {
	q.X = 0
	q.Y = 0
	q.Z = 0
	q.W = 1
}

// IsIdentity returns if this is an identity quaternion.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// IsFinite returns whether all components are finite.
func (q Quat) IsFinite() bool {
	return IsFinite(q.X) && IsFinite(q.Y) && IsFinite(q.Z) && IsFinite(q.W)
}

// LengthSquared returns this quanternion's length squared
func (q Quat) LengthSquared() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the length of this quaternion
func (q Quat) Length() float32 {
	return Sqrt(q.LengthSquared())
}

// Normalize normalizes this quaternion.
// A zero quaternion becomes the identity.
func (q *Quat) Normalize() {
	l := q.Length()
	if l == 0 {
		q.SetIdentity()
		return
	}
	l = 1 / l
	q.X *= l
	q.Y *= l
	q.Z *= l
	q.W *= l
}

// MulVector3 returns the given vector rotated by this quaternion.
func (q Quat) MulVector3(v Vector3) Vector3 {
	u := Vec3(q.X, q.Y, q.Z)
	t := u.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(q.W)).Add(u.Cross(t))
}

// SetFromUnitVectors sets this quaternion to the rotation from vector vFrom to vTo.
// The vectors must be normalized.
func (q *Quat) SetFromUnitVectors(vFrom, vTo Vector3) {
	var v1 Vector3
	var EPS float32 = 0.000001

	r := vFrom.Dot(vTo) + 1
	if r < EPS {
		r = 0
		if Abs(vFrom.X) > Abs(vFrom.Z) {
			v1.Set(-vFrom.Y, vFrom.X, 0)
		} else {
			v1.Set(0, -vFrom.Z, vFrom.Y)
		}
	} else {
		v1 = vFrom.Cross(vTo)
	}
	q.X = v1.X
	q.Y = v1.Y
	q.Z = v1.Z
	q.W = r

	q.Normalize()
}

// setFromBasis sets this quaternion from the rotation matrix whose
// columns are the given orthonormal axes.
func (q *Quat) setFromBasis(x, y, z Vector3) {
	m11, m12, m13 := x.X, y.X, z.X
	m21, m22, m23 := x.Y, y.Y, z.Y
	m31, m32, m33 := x.Z, y.Z, z.Z
	trace := m11 + m22 + m33

	var s float32
	if trace > 0 {
		s = 0.5 / Sqrt(trace+1.0)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s
	} else if m11 > m22 && m11 > m33 {
		s = 2.0 * Sqrt(1.0+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s
	} else if m22 > m33 {
		s = 2.0 * Sqrt(1.0+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s
	} else {
		s = 2.0 * Sqrt(1.0+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}
}

// LookRotation returns the rotation that maps +Z onto the given forward
// direction while keeping +Y as close to upward as possible.
// A zero forward returns the identity. When forward is parallel
// to upward, the shortest arc from +Z is used instead.
func LookRotation(forward, upward Vector3) Quat {
	q := NewQuatIdentity()
	if forward.IsZero() {
		return q
	}
	z := forward.Normal()
	x := upward.Cross(z)
	if x.LengthSquared() < 1e-12 {
		q.SetFromUnitVectors(Vec3(0, 0, 1), z)
		return q
	}
	x = x.Normal()
	y := z.Cross(x)
	q.setFromBasis(x, y, z)
	q.Normalize()
	return q
}
