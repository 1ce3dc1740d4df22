// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blk

import (
	"math"

	"github.com/cpmech/goblock/lp"
	"github.com/cpmech/goblock/tol"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Block is a convex polytope: the intersection of Faces, each anchored to
// Origin (world coordinates). Every "update" returns a fresh Block; Block
// values are never mutated in place. Spec §3/§4.E.
type Block struct {
	Origin [3]float64
	Faces  []Face
}

// Intersects determines whether joint's plane, restricted to its polygonal
// bound (if any), meets the interior of b. On success it returns a witness
// point in b's local frame. Spec §4.E.1.
func (b Block) Intersects(j Joint) (witness [3]float64, ok bool) {
	if len(b.Faces) == 0 {
		chk.Panic("blk: Intersects called on a Block with no faces")
	}
	lj := j.TranslateTo(b.Origin[0], b.Origin[1], b.Origin[2])

	p := lp.NewProblem(4, lp.Minimize, []float64{0, 0, 0, 1})
	p.AddConstraint([]float64{tol.SnapEps(lj.A, tol.GeomEps), tol.SnapEps(lj.B, tol.GeomEps), tol.SnapEps(lj.C, tol.GeomEps), 0}, lp.EQ, tol.SnapEps(lj.D, tol.GeomEps))

	for _, f := range b.Faces {
		p.AddConstraint([]float64{tol.SnapEps(f.A, tol.GeomEps), tol.SnapEps(f.B, tol.GeomEps), tol.SnapEps(f.C, tol.GeomEps), -1}, lp.LE, tol.SnapEps(f.D, tol.GeomEps))
	}
	for _, gc := range j.GlobalCoordinates() {
		ld := gc.D - gc.A*b.Origin[0] - gc.B*b.Origin[1] - gc.C*b.Origin[2]
		p.AddConstraint([]float64{tol.SnapEps(gc.A, tol.GeomEps), tol.SnapEps(gc.B, tol.GeomEps), tol.SnapEps(gc.C, tol.GeomEps), -1}, lp.LE, tol.SnapEps(ld, tol.GeomEps))
	}

	x, opt, feasible := p.Solve()
	if !feasible || opt >= -1e-12 {
		return [3]float64{}, false
	}
	return [3]float64{x[0], x[1], x[2]}, true
}

// Cut splits b across joint j. If j does not intersect b's interior, Cut
// returns []Block{b} unchanged. Otherwise it returns the two children,
// both anchored at the witness point, each carrying one of the two
// opposite halves of j's plane as a new face with offset 0. Spec §4.E.2.
func (b Block) Cut(j Joint) []Block {
	witness, ok := b.Intersects(j)
	if !ok {
		return []Block{b}
	}
	newOrigin := [3]float64{
		b.Origin[0] + witness[0],
		b.Origin[1] + witness[1],
		b.Origin[2] + witness[2],
	}
	kept := b.UpdateFaces(newOrigin).Faces

	plus := make([]Face, 0, len(kept)+1)
	plus = append(plus, Face{A: j.A, B: j.B, C: j.C, D: 0, Phi: j.Phi, Cohesion: j.Cohesion})
	plus = append(plus, kept...)

	minus := make([]Face, 0, len(kept)+1)
	minus = append(minus, Face{A: -j.A, B: -j.B, C: -j.C, D: 0, Phi: j.Phi, Cohesion: j.Cohesion})
	minus = append(minus, kept...)

	return []Block{
		{Origin: newOrigin, Faces: plus},
		{Origin: newOrigin, Faces: minus},
	}
}

// UpdateFaces re-expresses every face's offset relative to newOrigin while
// leaving each plane's world-frame position unchanged. The returned faces
// carry unit normals. Spec §4.E.7.
func (b Block) UpdateFaces(newOrigin [3]float64) Block {
	faces := make([]Face, len(b.Faces))
	for i, f := range b.Faces {
		faces[i] = updateFace(f, b.Origin, newOrigin)
	}
	return Block{Origin: newOrigin, Faces: faces}
}

// updateFace re-anchors a single face from origin O to origin Onew.
func updateFace(f Face, O, Onew [3]float64) Face {
	norm := math.Sqrt(f.A*f.A + f.B*f.B + f.C*f.C)
	if norm < tol.GeomEps {
		chk.Panic("blk: face has zero normal vector")
	}

	var w [3]float64
	switch {
	case math.Abs(f.C) >= tol.GeomEps:
		w = [3]float64{O[0], O[1], O[2] + f.D/f.C}
	case math.Abs(f.B) >= tol.GeomEps:
		w = [3]float64{O[0], O[1] + f.D/f.B, O[2]}
	case math.Abs(f.A) >= tol.GeomEps:
		w = [3]float64{O[0] + f.D/f.A, O[1], O[2]}
	default:
		chk.Panic("blk: face has zero normal vector")
	}

	newD := (f.A*(w[0]-Onew[0]) + f.B*(w[1]-Onew[1]) + f.C*(w[2]-Onew[2])) / norm
	return Face{A: f.A / norm, B: f.B / norm, C: f.C / norm, D: newD, Phi: f.Phi, Cohesion: f.Cohesion}
}

// NonRedundantFaces deduplicates b's faces structurally, then drops every
// face that is never the active bound of the remaining set. Order of the
// kept faces matches their first occurrence in b.Faces. Spec §4.E.3.
func (b Block) NonRedundantFaces() []Face {
	deduped := make([]Face, 0, len(b.Faces))
	for _, f := range b.Faces {
		dup := false
		for _, g := range deduped {
			if f.Equals(g) {
				dup = true
				break
			}
		}
		if !dup {
			deduped = append(deduped, f)
		}
	}

	// rows holds the shared constraint coefficients (every candidate tested
	// against the same half-space set), allocated once rather than rebuilt
	// per face.
	rows := la.MatAlloc(len(deduped), 3)
	rhs := make([]float64, len(deduped))
	for i, g := range deduped {
		rows[i][0], rows[i][1], rows[i][2] = g.A, g.B, g.C
		rhs[i] = g.D
	}

	kept := make([]Face, 0, len(deduped))
	for _, f := range deduped {
		p := lp.NewProblem(3, lp.Maximize, []float64{f.A, f.B, f.C})
		for i := range rows {
			p.AddConstraint(rows[i], lp.LE, rhs[i])
		}
		_, opt, ok := p.Solve()
		if !ok || math.Abs(opt-f.D) <= 1e-12 {
			kept = append(kept, f)
		}
	}
	return kept
}

// Canonicalize returns b with redundant faces removed, re-anchored to its
// own centroid, and every face's coefficients tolerance-snapped — the
// output contract a driver receives for each leaf/child polytope. Spec §6.
func (b Block) Canonicalize() Block {
	reduced := Block{Origin: b.Origin, Faces: b.NonRedundantFaces()}
	centroid, _ := reduced.Centroid()
	reanchored := reduced.UpdateFaces(centroid)
	faces := make([]Face, len(reanchored.Faces))
	for i, f := range reanchored.Faces {
		faces[i] = f.ApplyTolerance()
	}
	return Block{Origin: reanchored.Origin, Faces: faces}
}
