// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/sgview/math32"
)

// Pose is the placement of an oriented bounding box in the viewer frame.
// Extent is the axis-aligned size of the box in its own local frame,
// before rotation.
type Pose struct {
	Pos    math32.Vector3
	Extent math32.Vector3
	Rot    math32.Quat
}

// String returns a string representation of the pose.
func (ps Pose) String() string {
	return fmt.Sprintf("pos: %v extent: %v rot: %v", ps.Pos, ps.Extent, ps.Rot)
}

// Transform maps a pose in the perception frame (z up, right handed)
// into the viewer frame (y up, left handed):
//
//	position (x, y, z)    -> (x, z, y)
//	extent   (x, y, z)    -> (x, z, y)
//	rotation (x, y, z, w) -> (-x, -z, -y, w)
//
// A rotation that is not exactly four values yields the identity.
// Transform performs no validation; see [Build] for that.
func Transform(pos, extent math32.Vector3, rot []float32) Pose {
	return Pose{
		Pos:    TransformVector(pos),
		Extent: TransformVector(extent),
		Rot:    TransformRotation(rot),
	}
}

// TransformVector relabels the axes of a perception frame vector
// into the viewer frame. It applies to both positions and extents.
func TransformVector(v math32.Vector3) math32.Vector3 {
	return v.SwapYZ()
}

// TransformRotation converts a perception frame quaternion given as
// x, y, z, w into the viewer frame. Swapping two axes flips the
// handedness, so the vector part is negated along with the y/z swap.
// Anything other than four values, or the all zero quaternion,
// yields the identity.
func TransformRotation(rot []float32) math32.Quat {
	q, err := math32.QuatFromSlice(rot)
	if err != nil || q.LengthSquared() == 0 {
		return math32.NewQuatIdentity()
	}
	return math32.NewQuat(-q.X, -q.Z, -q.Y, q.W)
}
