// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blk

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_face01(tst *testing.T) {

	chk.PrintTitle("face01: tolerance snapping")

	f := Face{A: 1e-9, B: 1, C: -1e-8, D: 0.5, Phi: 30, Cohesion: 1e-10}
	g := f.ApplyTolerance()
	chk.Scalar(tst, "A snapped", 1e-15, g.A, 0)
	chk.Scalar(tst, "B kept", 1e-15, g.B, 1)
	chk.Scalar(tst, "C snapped", 1e-15, g.C, 0)
	chk.Scalar(tst, "Cohesion snapped", 1e-15, g.Cohesion, 0)
}

func Test_face02(tst *testing.T) {

	chk.PrintTitle("face02: structural equality")

	a := Face{A: 1, B: 1e-9, C: 0, D: 1, Phi: 10, Cohesion: 5}
	b := Face{A: 1, B: 0, C: 1e-9, D: 1, Phi: 10, Cohesion: 5}
	if !a.Equals(b) {
		tst.Errorf("expected faces equal after snapping")
	}
	c := Face{A: 1, B: 0, C: 0, D: 2, Phi: 10, Cohesion: 5}
	if a.Equals(c) {
		tst.Errorf("expected faces distinct (different D)")
	}
}
