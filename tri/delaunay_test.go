// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tri

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_tri01(tst *testing.T) {

	chk.PrintTitle("tri01: fewer than 3 points")

	if out := Triangulate([][2]float64{{0, 0}, {1, 1}}); out != nil {
		tst.Errorf("expected nil for fewer than 3 points, got %v", out)
	}
}

func Test_tri02(tst *testing.T) {

	chk.PrintTitle("tri02: unit square")

	pts := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	out := Triangulate(pts)
	if len(out) != 2 {
		tst.Fatalf("expected 2 triangles for a square, got %d", len(out))
	}

	area := 0.0
	for _, t := range out {
		a, b, c := pts[t[0]], pts[t[1]], pts[t[2]]
		sa := signedArea2(a, b, c)
		if sa >= 0 {
			tst.Errorf("triangle %v is not clockwise (signed area %g)", t, sa)
		}
		area += -sa / 2
	}
	chk.Scalar(tst, "total area", 1e-12, area, 1.0)
}

func Test_tri03(tst *testing.T) {

	chk.PrintTitle("tri03: triangle")

	pts := [][2]float64{{0, 0}, {2, 0}, {0, 2}}
	out := Triangulate(pts)
	if len(out) != 1 {
		tst.Fatalf("expected 1 triangle, got %d", len(out))
	}
	a, b, c := pts[out[0][0]], pts[out[0][1]], pts[out[0][2]]
	chk.Scalar(tst, "area", 1e-12, -signedArea2(a, b, c)/2, 2.0)
}
