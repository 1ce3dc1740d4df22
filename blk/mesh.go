// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blk

import (
	"math"

	"github.com/cpmech/goblock/tol"
	"github.com/cpmech/goblock/tri"
)

// FindVertices enumerates, for each face, every point where it meets two
// other faces (any pair, including itself, per spec §4.E.4 — a triple
// degenerates to a zero scalar triple product whenever one of j,k repeats
// i, so the "including itself" clause needs no special casing here).
// Output is parallel to faces; no filtering against the polytope's other
// half-spaces is performed.
func FindVertices(faces []Face) [][][3]float64 {
	n := len(faces)
	out := make([][][3]float64, n)
	for i := range faces {
		ni, di := faces[i].normal(), faces[i].D
		var pts [][3]float64
		for j := 0; j < n; j++ {
			nj, dj := faces[j].normal(), faces[j].D
			for k := j + 1; k < n; k++ {
				nk, dk := faces[k].normal(), faces[k].D
				det := ni[0]*(nj[1]*nk[2]-nj[2]*nk[1]) -
					ni[1]*(nj[0]*nk[2]-nj[2]*nk[0]) +
					ni[2]*(nj[0]*nk[1]-nj[1]*nk[0])
				if math.Abs(det) <= tol.GeomEps {
					continue
				}
				x, ok := cramer3([3][3]float64{ni, nj, nk}, [3]float64{di, dj, dk}, det)
				if !ok {
					continue
				}
				pts = appendUnique(pts, x)
			}
		}
		out[i] = pts
	}
	return out
}

// cramer3 solves [rows]x = rhs via Cramer's rule, given the precomputed
// determinant of rows (spec §9: no general matrix machinery, just a 3x3
// solve and a cross product).
func cramer3(rows [3][3]float64, rhs [3]float64, det float64) ([3]float64, bool) {
	if math.Abs(det) <= tol.GeomEps {
		return [3]float64{}, false
	}
	var x [3]float64
	for col := 0; col < 3; col++ {
		m := rows
		for r := 0; r < 3; r++ {
			m[r][col] = rhs[r]
		}
		x[col] = det3(m) / det
	}
	return x, true
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func appendUnique(pts [][3]float64, x [3]float64) [][3]float64 {
	for _, p := range pts {
		if math.Abs(p[0]-x[0]) < tol.GeomEps && math.Abs(p[1]-x[1]) < tol.GeomEps && math.Abs(p[2]-x[2]) < tol.GeomEps {
			return pts
		}
	}
	return append(pts, x)
}

// MeshFaces triangulates every face by rotating it flat (normal onto +z),
// feeding the flattened points to tri.Triangulate, and correcting winding
// for faces whose normal is antiparallel to +z. Spec §4.E.5.
func MeshFaces(faces []Face, vertices [][][3]float64) [][][3]int {
	out := make([][][3]int, len(faces))
	for i, f := range faces {
		n := f.normal()
		R, identity := tol.RotationToZ(n)

		pts2d := make([][2]float64, len(vertices[i]))
		for k, v := range vertices[i] {
			p := v
			if !identity {
				p = tol.Apply(R, v)
			}
			pts2d[k] = [2]float64{p[0], p[1]}
		}

		tris := tri.Triangulate(pts2d)
		reverse := identity && n[2] < 0
		faceTris := make([][3]int, len(tris))
		for t, tr := range tris {
			if reverse {
				faceTris[t] = [3]int{tr[2], tr[1], tr[0]}
			} else {
				faceTris[t] = tr
			}
		}
		if reverse {
			for l, r := 0, len(faceTris)-1; l < r; l, r = l+1, r-1 {
				faceTris[l], faceTris[r] = faceTris[r], faceTris[l]
			}
		}
		out[i] = faceTris
	}
	return out
}

// Centroid computes b's volume and world-frame centroid from its
// triangulated boundary via the divergence theorem. Callers must have
// eliminated redundant faces first (spec §4.E.4/§9); this method does not
// do so itself. Spec §4.E.6.
func (b Block) Centroid() (world [3]float64, volume float64) {
	vertices := FindVertices(b.Faces)
	mesh := MeshFaces(b.Faces, vertices)

	var V float64
	var Csum [3]float64
	for i, tris := range mesh {
		pts := vertices[i]
		for _, t := range tris {
			// stored triple is clockwise (p0,p1,p2); integrate as (a,b,c) = (p2,p1,p0).
			a, bb, c := pts[t[2]], pts[t[1]], pts[t[0]]
			nTri := cross(sub(bb, a), sub(c, a))
			V += dot(a, nTri) / 6
			for k := 0; k < 3; k++ {
				Csum[k] += (nTri[k] / 24) * (sq(a[k]+bb[k]) + sq(bb[k]+c[k]) + sq(c[k]+a[k]))
			}
		}
	}

	if math.Abs(V) < tol.GeomEps {
		return b.Origin, V
	}
	for k := 0; k < 3; k++ {
		world[k] = Csum[k]/(2*V) + b.Origin[k]
	}
	return world, V
}

func sub(u, v [3]float64) [3]float64 {
	return [3]float64{u[0] - v[0], u[1] - v[1], u[2] - v[2]}
}

func sq(x float64) float64 { return x * x }
