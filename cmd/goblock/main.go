// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command goblock is a thin demonstration driver for package blk: it builds
// a bounding-box polytope, applies a hand-built stream of joints, and
// prints each resulting child polytope's canonical origin, centroid, volume
// and face count. It stands in for the out-of-scope joint-generation / file-parsing
// driver described in spec §1/§6 — it is not part of the core.
package main

import (
	"flag"
	"math"

	"github.com/cpmech/goblock/blk"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	verbose := flag.Bool("v", true, "print each resulting block")
	nx := flag.Float64("nx", 2, "bounding box size in x")
	ny := flag.Float64("ny", 2, "bounding box size in y")
	nz := flag.Float64("nz", 2, "bounding box size in z")
	flag.Parse()

	defer func() {
		if err := recover(); err != nil {
			io.Pf("ERROR: %v\n", err)
		}
	}()

	if *verbose {
		io.Pf("goblock -- convex-polytope cutting and analysis\n\n")
	}

	box := boundingBox(*nx, *ny, *nz)

	joints := []blk.Joint{
		blk.JointFromDipDipDirection(math.Pi/2, 0, (*nx)/2, (*ny)/2, (*nz)/2, 0, nil, 30, 0),
		{A: 0, B: 0, C: 1, D: 0, Cx: (*nx) / 2, Cy: (*ny) / 2, Cz: (*nz) / 2, Phi: 35, Cohesion: 10},
	}

	blocks := []blk.Block{box}
	for _, j := range joints {
		var next []blk.Block
		for _, b := range blocks {
			next = append(next, b.Cut(j)...)
		}
		blocks = next
	}

	for i, b := range blocks {
		c := b.Canonicalize()
		centroid, volume := c.Centroid()
		if *verbose {
			io.Pf("block %d: origin=%v centroid=%v volume=%g faces=%d\n", i, c.Origin, centroid, volume, len(c.Faces))
		}
	}
}

// boundingBox builds an axis-aligned box [0,sx]x[0,sy]x[0,sz] as the
// typical initial polytope handed to the core by a real driver (spec §6).
func boundingBox(sx, sy, sz float64) blk.Block {
	if sx <= 0 || sy <= 0 || sz <= 0 {
		chk.Panic("bounding box dimensions must be positive")
	}
	return blk.Block{
		Origin: [3]float64{0, 0, 0},
		Faces: []blk.Face{
			{A: 1, B: 0, C: 0, D: sx},
			{A: -1, B: 0, C: 0, D: 0},
			{A: 0, B: 1, C: 0, D: sy},
			{A: 0, B: -1, C: 0, D: 0},
			{A: 0, B: 0, C: 1, D: sz},
			{A: 0, B: 0, C: -1, D: 0},
		},
	}
}
