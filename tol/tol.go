// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tol holds the two tolerances the polytope kernel snaps against,
// plus the small rotation helper used to flatten a face before meshing it.
package tol

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// FaceEps is the user-visible snapping tolerance applied to Face attributes.
const FaceEps = 1e-6

// GeomEps is the tolerance used by geometric predicates internal to the
// polytope core: redundancy, coplanarity, rotation triviality.
const GeomEps = 1e-12

// Snap replaces x by 0 if |x| < FaceEps.
func Snap(x float64) float64 {
	if math.Abs(x) < FaceEps {
		return 0
	}
	return x
}

// SnapEps replaces x by 0 if |x| < eps.
func SnapEps(x, eps float64) float64 {
	if math.Abs(x) < eps {
		return 0
	}
	return x
}

// RotationToZ builds the rotation matrix R that maps the unit(-ish) normal n
// onto +z, per spec §4.E.5. If n is already parallel to ±z (|n × ez| <
// GeomEps) R is the identity, and the caller is responsible for noticing the
// antiparallel (0,0,-1) case and reversing triangle order afterwards.
func RotationToZ(n [3]float64) (R [3][3]float64, identity bool) {
	ez := []float64{0, 0, 1}
	cross := make([]float64, 3)
	utl.Cross3d(cross, n[:], ez)
	if math.Sqrt(cross[0]*cross[0]+cross[1]*cross[1]+cross[2]*cross[2]) < GeomEps {
		return identityMat(), true
	}
	u, v, w := n[0], n[1], n[2]
	h := math.Sqrt(u*u + v*v)
	norm := math.Sqrt(u*u + v*v + w*w)

	// Txz: rotate about z so (u,v,0) -> (h,0,0)
	var Txz [3][3]float64
	Txz[0][0], Txz[0][1] = u/h, v/h
	Txz[1][0], Txz[1][1] = -v/h, u/h
	Txz[2][2] = 1

	// Tz: rotate in x-z so the x-axis tilts onto z
	var Tz [3][3]float64
	Tz[0][0], Tz[0][2] = w/norm, -h/norm
	Tz[1][1] = 1
	Tz[2][0], Tz[2][2] = h/norm, w/norm

	R = matMul(Tz, Txz)
	return R, false
}

// Apply rotates vector p by R.
func Apply(R [3][3]float64, p [3]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = R[i][0]*p[0] + R[i][1]*p[1] + R[i][2]*p[2]
	}
	return out
}

func identityMat() [3][3]float64 {
	return [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func matMul(a, b [3][3]float64) [3][3]float64 {
	var c [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				c[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return c
}
