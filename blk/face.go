// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blk implements the polytope core: Face (a bounded half-space),
// Joint (a cut plane with an optional polygonal bound), and Block (a
// convex polytope represented as the intersection of Faces anchored to a
// movable local origin). See spec §3/§4.C-E.
package blk

import "github.com/cpmech/goblock/tol"

// Face is a bounded half-space a·x+b·y+c·z <= d, measured relative to the
// owning Block's local origin. Phi (friction angle) and Cohesion are inert
// attributes carried through for the driver's benefit; nothing in this
// package computes with them, though Equals compares them.
type Face struct {
	A, B, C  float64
	D        float64
	Phi      float64
	Cohesion float64
}

// ApplyTolerance returns a copy of f with every scalar field snapped to 0
// when |field| < tol.FaceEps.
func (f Face) ApplyTolerance() Face {
	return Face{
		A:        tol.Snap(f.A),
		B:        tol.Snap(f.B),
		C:        tol.Snap(f.C),
		D:        tol.Snap(f.D),
		Phi:      tol.Snap(f.Phi),
		Cohesion: tol.Snap(f.Cohesion),
	}
}

// Equals is structural equality after tolerance snapping on both sides.
func (f Face) Equals(g Face) bool {
	a, b := f.ApplyTolerance(), g.ApplyTolerance()
	return a.A == b.A && a.B == b.B && a.C == b.C && a.D == b.D && a.Phi == b.Phi && a.Cohesion == b.Cohesion
}

// normal returns the face's (a,b,c) as a plain array, for use in the 3x3
// vertex-intersection and rotation machinery.
func (f Face) normal() [3]float64 { return [3]float64{f.A, f.B, f.C} }
