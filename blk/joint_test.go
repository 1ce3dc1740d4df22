// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blk

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_joint01(tst *testing.T) {

	chk.PrintTitle("joint01: TranslateTo")

	j := Joint{A: 0, B: 0, C: 1, D: 0.49, Cx: 0, Cy: 0.5, Cz: 0}
	lj := j.TranslateTo(0, 0, 0)
	chk.Scalar(tst, "D local", 1e-12, lj.D, 0.49)
	chk.Scalar(tst, "Cy re-anchored", 1e-12, lj.Cy, 0.5)

	j2 := Joint{A: 1, B: 0, C: 0, D: 0, Cx: 1, Cy: 1, Cz: 1}
	lj2 := j2.TranslateTo(1, 1, 1)
	chk.Scalar(tst, "D at its own origin", 1e-12, lj2.D, 0)
	chk.Scalar(tst, "Cx re-anchored to 0", 1e-12, lj2.Cx, 0)
}

func Test_joint02(tst *testing.T) {

	chk.PrintTitle("joint02: GlobalCoordinates of an unbounded joint")

	j := Joint{A: 0, B: 0, C: 1, D: 0, Cx: 0, Cy: 0, Cz: 0}
	if gc := j.GlobalCoordinates(); gc != nil {
		tst.Errorf("expected nil GlobalCoordinates for empty shape, got %v", gc)
	}
}

func Test_joint03(tst *testing.T) {

	chk.PrintTitle("joint03: GlobalCoordinates bounds a horizontal joint")

	// horizontal joint (normal +z), centred at origin, bounded by a square
	// of half-width 1 in its own strike/dip frame (dip direction 0).
	j := Joint{
		A: 0, B: 0, C: 1, D: 0,
		Cx: 0, Cy: 0, Cz: 0,
		DipDirection: 0,
		Shape: []ShapeLine{
			{U: 1, V: 0, L: 1},
			{U: -1, V: 0, L: 1},
			{U: 0, V: 1, L: 1},
			{U: 0, V: -1, L: 1},
		},
	}
	gc := j.GlobalCoordinates()
	if len(gc) != 4 {
		tst.Fatalf("expected 4 global bounding faces, got %d", len(gc))
	}
	for _, f := range gc {
		n := math.Sqrt(f.A*f.A + f.B*f.B + f.C*f.C)
		if n < 1e-9 {
			tst.Fatalf("degenerate global bounding face %v", f)
		}
		// the square's bound at distance 1 from the centre maps, up to the
		// strike/dip rotation, to a world offset whose magnitude is 1.
		chk.Scalar(tst, "bound magnitude", 1e-9, math.Abs(f.D)/n, 1)
	}
}

func Test_joint04(tst *testing.T) {

	chk.PrintTitle("joint04: JointFromDipDipDirection produces a unit-ish normal")

	j := JointFromDipDipDirection(math.Pi/4, math.Pi/3, 0, 0, 0, 0, nil, 30, 10)
	n := math.Sqrt(j.A*j.A + j.B*j.B + j.C*j.C)
	chk.Scalar(tst, "normal magnitude", 1e-12, n, 1)
}
