// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blk

import (
	"math"

	"github.com/cpmech/goblock/tol"
)

// ShapeLine is one in-plane bounding line of a Joint's polygonal bound, in
// the joint's own strike/dip frame: (u,v,0) is the line's 2-D normal and L
// is its signed distance from the joint's centre in that frame.
type ShapeLine struct {
	U, V, L float64
}

// Joint is an oriented cut plane a·x+b·y+c·z=d, offset d measured relative
// to the joint's own centre C (not world-absolute — see TranslateTo), plus
// an optional polygonal in-plane bound. An empty Shape means the joint is
// an unbounded plane.
type Joint struct {
	A, B, C           float64
	D                 float64
	Cx, Cy, Cz        float64
	Dip, DipDirection float64
	Phi, Cohesion     float64
	Shape             []ShapeLine
}

// TranslateTo re-anchors the joint's centre to (ox,oy,oz) and shifts D so
// that a·x+b·y+c·z=D still describes the same world plane, now measured
// relative to the new origin. Spec §4.D: D <- D + (a,b,c)·(Cx-ox,Cy-oy,Cz-oz),
// evaluated against the already re-anchored centre.
func (j Joint) TranslateTo(ox, oy, oz float64) Joint {
	cx, cy, cz := j.Cx-ox, j.Cy-oy, j.Cz-oz
	out := j
	out.Cx, out.Cy, out.Cz = cx, cy, cz
	out.D = j.D + j.A*cx + j.B*cy + j.C*cz
	return out
}

// GlobalCoordinates returns the joint's polygonal bound as world-frame
// half-spaces ((a',b',c'), d'), by rotating each Shape line through
// Q = [Nstrike | Ndip | Nplane] and translating by the joint's centre.
// Spec §3. An unbounded joint (empty Shape) returns nil.
func (j Joint) GlobalCoordinates() []Face {
	if len(j.Shape) == 0 {
		return nil
	}
	nPlane := unit([3]float64{j.A, j.B, j.C})
	s := math.Mod(j.DipDirection+math.Pi/2, 2*math.Pi)
	nStrike := [3]float64{math.Cos(s), math.Sin(s), 0}
	nDip := cross(nPlane, nStrike)

	out := make([]Face, len(j.Shape))
	for i, line := range j.Shape {
		gn := add(scale(nStrike, line.U), scale(nDip, line.V))
		d := line.L + dot(gn, [3]float64{j.Cx, j.Cy, j.Cz})
		out[i] = Face{A: gn[0], B: gn[1], C: gn[2], D: d, Phi: j.Phi, Cohesion: j.Cohesion}
	}
	return out
}

// JointFromDipDipDirection builds a Joint from geological dip/dip-direction
// angles rather than a precomputed plane normal: a real driver naturally
// has dip/dip-direction for a discontinuity before it has (a,b,c). The
// normal is derived the same way the strike/dip frame of §3 is built.
func JointFromDipDipDirection(dip, dipDirection, cx, cy, cz, planeD float64, shape []ShapeLine, phi, cohesion float64) Joint {
	a := math.Sin(dip) * math.Cos(dipDirection)
	b := math.Sin(dip) * math.Sin(dipDirection)
	c := math.Cos(dip)
	return Joint{
		A: a, B: b, C: c, D: planeD,
		Cx: cx, Cy: cy, Cz: cz,
		Dip: dip, DipDirection: dipDirection,
		Phi: phi, Cohesion: cohesion,
		Shape: shape,
	}
}

func unit(v [3]float64) [3]float64 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n < tol.GeomEps {
		return v
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}

func cross(u, v [3]float64) [3]float64 {
	return [3]float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

func add(u, v [3]float64) [3]float64 {
	return [3]float64{u[0] + v[0], u[1] + v[1], u[2] + v[2]}
}

func scale(v [3]float64, s float64) [3]float64 {
	return [3]float64{v[0] * s, v[1] * s, v[2] * s}
}

func dot(u, v [3]float64) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}
