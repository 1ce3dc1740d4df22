// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tri triangulates a 2-D point set with incremental Bowyer-Watson
// Delaunay insertion. It exists to serve blk's per-face meshing step (spec
// §4.E.5): mesh quality beyond covering the convex hull is not a goal, and
// callers are responsible for deduplicating their input points.
package tri

import "math"

// triangle holds indices into the *working* point list, which is the
// caller's points followed by three synthetic super-triangle vertices.
type triangle struct{ a, b, c int }

type edge struct{ u, v int }

// Triangulate returns, for each triangle of the Delaunay triangulation of
// pts, the clockwise-ordered index triple (i,j,k) into pts. Fewer than 3
// points yields an empty result.
func Triangulate(pts [][2]float64) [][3]int {
	if len(pts) < 3 {
		return nil
	}

	work := make([][2]float64, len(pts))
	copy(work, pts)
	superA, superB, superC := superTriangle(work)
	work = append(work, superA, superB, superC)
	iA, iB, iC := len(pts), len(pts)+1, len(pts)+2

	tris := []triangle{{iA, iB, iC}}

	for p := 0; p < len(pts); p++ {
		var bad []triangle
		keep := tris[:0:0]
		for _, t := range tris {
			if inCircumcircle(work[t.a], work[t.b], work[t.c], work[p]) {
				bad = append(bad, t)
			} else {
				keep = append(keep, t)
			}
		}

		boundary := boundaryEdges(bad)
		for _, e := range boundary {
			keep = append(keep, triangle{e.u, e.v, p})
		}
		tris = keep
	}

	var out [][3]int
	for _, t := range tris {
		if t.a == iA || t.a == iB || t.a == iC ||
			t.b == iA || t.b == iB || t.b == iC ||
			t.c == iA || t.c == iB || t.c == iC {
			continue
		}
		i, j, k := t.a, t.b, t.c
		if signedArea2(work[i], work[j], work[k]) > 0 {
			j, k = k, j // force clockwise
		}
		out = append(out, [3]int{i, j, k})
	}
	return out
}

// superTriangle returns a triangle comfortably enclosing every point in pts.
func superTriangle(pts [][2]float64) (a, b, c [2]float64) {
	minX, minY := pts[0][0], pts[0][1]
	maxX, maxY := pts[0][0], pts[0][1]
	for _, p := range pts {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	dx, dy := maxX-minX, maxY-minY
	d := math.Max(dx, dy)
	if d == 0 {
		d = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2
	a = [2]float64{midX - 20*d, midY - d}
	b = [2]float64{midX, midY + 20*d}
	c = [2]float64{midX + 20*d, midY - d}
	return
}

// boundaryEdges returns the edges of the cavity left by removing bad, i.e.
// edges that appear exactly once among the bad triangles.
func boundaryEdges(bad []triangle) []edge {
	count := map[edge]int{}
	order := []edge{}
	add := func(u, v int) {
		e := edge{u, v}
		if e.u > e.v {
			e.u, e.v = e.v, e.u
		}
		if count[e] == 0 {
			order = append(order, e)
		}
		count[e]++
	}
	for _, t := range bad {
		add(t.a, t.b)
		add(t.b, t.c)
		add(t.c, t.a)
	}
	var out []edge
	for _, e := range order {
		if count[e] == 1 {
			out = append(out, e)
		}
	}
	return out
}

// inCircumcircle reports whether d lies inside the circumcircle of a,b,c.
func inCircumcircle(a, b, c, d [2]float64) bool {
	ax, ay := a[0]-d[0], a[1]-d[1]
	bx, by := b[0]-d[0], b[1]-d[1]
	cx, cy := c[0]-d[0], c[1]-d[1]

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)

	if signedArea2(a, b, c) > 0 {
		return det > 1e-12
	}
	return det < -1e-12
}

// signedArea2 is twice the signed area of a,b,c (positive = counter-clockwise).
func signedArea2(a, b, c [2]float64) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])
}
