// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lp implements a small, dense, two-phase primal simplex solver for
// linear programs over unbounded real variables. It backs the feasibility
// and redundancy tests of package blk: systems of at most a handful of
// variables and a few dozen constraints, so a textbook tableau method (with
// Bland's rule to avoid cycling) trumps anything fancier.
package lp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Sense is the optimisation direction.
type Sense int

// Optimisation senses.
const (
	Minimize Sense = iota
	Maximize
)

// Relation is a constraint's comparison operator.
type Relation int

// Constraint relations.
const (
	LE Relation = iota
	GE
	EQ
)

// Constraint is one row of an LP: Coeffs·x Rel RHS.
type Constraint struct {
	Coeffs []float64
	Rel    Relation
	RHS    float64
}

// Problem is an LP with N unbounded real variables, built incrementally and
// solved once. The zero value is not usable; use NewProblem.
type Problem struct {
	N           int
	Sense       Sense
	Obj         []float64
	Constraints []Constraint
}

// feasTol is the tolerance used by the simplex iterations (entering reduced
// costs, ratio test) and when pivoting artificials out after phase 1. The
// phase-1 infeasibility check uses its own threshold of 1e-7.
const feasTol = 1e-9

// maxIters bounds the number of pivots performed in each phase; exceeding it
// is treated as numerical breakdown (cycling) and reported as infeasible.
const maxIters = 2000

// NewProblem creates an LP with n variables, the given objective sense, and
// objective coefficients obj (len(obj) must equal n).
func NewProblem(n int, sense Sense, obj []float64) *Problem {
	if n <= 0 {
		chk.Panic("lp: number of variables must be positive, got %d", n)
	}
	if len(obj) != n {
		chk.Panic("lp: objective has %d coefficients, want %d", len(obj), n)
	}
	return &Problem{N: n, Sense: sense, Obj: append([]float64{}, obj...)}
}

// AddConstraint appends a constraint coeffs·x Rel rhs. len(coeffs) must
// equal p.N.
func (p *Problem) AddConstraint(coeffs []float64, rel Relation, rhs float64) {
	if len(coeffs) != p.N {
		chk.Panic("lp: constraint has %d coefficients, want %d", len(coeffs), p.N)
	}
	p.Constraints = append(p.Constraints, Constraint{Coeffs: append([]float64{}, coeffs...), Rel: rel, RHS: rhs})
}

// Solve runs the two-phase simplex method. ok is false if the LP is
// infeasible, unbounded in the optimising direction, or the simplex breaks
// down numerically (cycling, singular basis) — all three are reported
// identically, per the solver's contract: the caller only cares that no
// useful optimum exists.
func (p *Problem) Solve() (assignment []float64, optimum float64, ok bool) {
	n := p.N
	m := len(p.Constraints)

	// every free variable x_i splits into x_i+ - x_i-, both >= 0.
	numSplit := 2 * n

	// normalise rhs >= 0, flipping LE<->GE when we negate a row.
	rel := make([]Relation, m)
	rhs := make([]float64, m)
	coeffs := make([][]float64, m)
	for i, c := range p.Constraints {
		r, v, cs := c.Rel, c.RHS, append([]float64{}, c.Coeffs...)
		if v < 0 {
			v = -v
			for j := range cs {
				cs[j] = -cs[j]
			}
			switch r {
			case LE:
				r = GE
			case GE:
				r = LE
			}
		}
		rel[i], rhs[i], coeffs[i] = r, v, cs
	}

	// assign extra-column indices: slack (LE), surplus+artificial (GE), artificial (EQ).
	slackCol := make([]int, m)
	surplusCol := make([]int, m)
	artCol := make([]int, m)
	for i := range slackCol {
		slackCol[i], surplusCol[i], artCol[i] = -1, -1, -1
	}
	col := numSplit
	for i, r := range rel {
		switch r {
		case LE:
			slackCol[i] = col
			col++
		case GE:
			surplusCol[i] = col
			col++
			artCol[i] = col
			col++
		case EQ:
			artCol[i] = col
			col++
		}
	}
	numVars := col

	// build the initial tableau.
	T := make([][]float64, m)
	for i := range T {
		T[i] = make([]float64, numVars+1)
		for j := 0; j < n; j++ {
			T[i][2*j] = coeffs[i][j]
			T[i][2*j+1] = -coeffs[i][j]
		}
		if slackCol[i] >= 0 {
			T[i][slackCol[i]] = 1
		}
		if surplusCol[i] >= 0 {
			T[i][surplusCol[i]] = -1
		}
		if artCol[i] >= 0 {
			T[i][artCol[i]] = 1
		}
		T[i][numVars] = rhs[i]
	}

	basis := make([]int, m)
	for i := range basis {
		if slackCol[i] >= 0 {
			basis[i] = slackCol[i]
		} else {
			basis[i] = artCol[i]
		}
	}

	hasArtificial := false
	for i := range artCol {
		if artCol[i] >= 0 {
			hasArtificial = true
		}
	}

	if hasArtificial {
		phase1Cost := make([]float64, numVars+1)
		for i := range artCol {
			if artCol[i] >= 0 {
				phase1Cost[artCol[i]] = 1
			}
		}
		if !simplex(T, basis, phase1Cost, nil) {
			return nil, 0, false
		}
		obj1 := 0.0
		for i, b := range basis {
			obj1 += phase1Cost[b] * T[i][numVars]
		}
		if obj1 > 1e-7 {
			return nil, 0, false // infeasible
		}
		// pivot any artificial variable remaining in the basis at zero level out,
		// if a non-artificial column gives a usable pivot.
		for i, b := range basis {
			if artCol[i] >= 0 && b == artCol[i] {
				pivoted := false
				for j := 0; j < numVars; j++ {
					if isArtificial(j, artCol) {
						continue
					}
					if math.Abs(T[i][j]) > feasTol {
						pivot(T, basis, i, j)
						pivoted = true
						break
					}
				}
				_ = pivoted // row is degenerate (all-zero) if not pivoted; harmless, stays at 0.
			}
		}
	}

	// phase 2: optimise the real objective, with artificial columns blocked.
	blocked := make([]bool, numVars+1)
	for i := range artCol {
		if artCol[i] >= 0 {
			blocked[artCol[i]] = true
		}
	}
	cost := make([]float64, numVars+1)
	sign := 1.0
	if p.Sense == Maximize {
		sign = -1.0
	}
	for j := 0; j < n; j++ {
		cost[2*j] = sign * p.Obj[j]
		cost[2*j+1] = -sign * p.Obj[j]
	}
	if !simplex(T, basis, cost, blocked) {
		return nil, 0, false // unbounded or numerical breakdown
	}

	x := make([]float64, n)
	value := make([]float64, numVars)
	for i, b := range basis {
		value[b] = T[i][numVars]
	}
	for j := 0; j < n; j++ {
		x[j] = value[2*j] - value[2*j+1]
	}
	opt := 0.0
	for j := 0; j < n; j++ {
		opt += p.Obj[j] * x[j]
	}
	return x, opt, true
}

func isArtificial(col int, artCol []int) bool {
	for _, a := range artCol {
		if a == col {
			return true
		}
	}
	return false
}

// simplex drives the tableau T (m rows, numVars+1 columns, last is RHS) to
// optimality for the given minimisation cost row, using Bland's rule.
// Columns flagged in blocked are never chosen as the entering variable.
// Returns false on unboundedness or if the iteration cap is hit.
func simplex(T [][]float64, basis []int, cost []float64, blocked []bool) bool {
	m := len(T)
	numVars := len(cost) - 1

	reduced := func() []float64 {
		row := append([]float64{}, cost...)
		for i, b := range basis {
			cb := cost[b]
			if cb == 0 {
				continue
			}
			for j := 0; j <= numVars; j++ {
				row[j] -= cb * T[i][j]
			}
		}
		return row
	}

	for iter := 0; iter < maxIters; iter++ {
		row := reduced()

		enter := -1
		for j := 0; j < numVars; j++ {
			if blocked != nil && blocked[j] {
				continue
			}
			if row[j] < -feasTol {
				enter = j
				break // Bland's rule: smallest index with negative reduced cost
			}
		}
		if enter == -1 {
			return true // optimal
		}

		leave, bestRatio := -1, math.Inf(1)
		for i := 0; i < m; i++ {
			if T[i][enter] > feasTol {
				ratio := T[i][numVars] / T[i][enter]
				if ratio < bestRatio-feasTol || (ratio < bestRatio+feasTol && (leave == -1 || basis[i] < basis[leave])) {
					bestRatio, leave = ratio, i
				}
			}
		}
		if leave == -1 {
			return false // unbounded
		}
		pivot(T, basis, leave, enter)
	}
	return false // numerical breakdown (cycling)
}

func pivot(T [][]float64, basis []int, row, col int) {
	m := len(T)
	width := len(T[row])
	piv := T[row][col]
	for j := 0; j < width; j++ {
		T[row][j] /= piv
	}
	for i := 0; i < m; i++ {
		if i == row {
			continue
		}
		f := T[i][col]
		if f == 0 {
			continue
		}
		for j := 0; j < width; j++ {
			T[i][j] -= f * T[row][j]
		}
	}
	basis[row] = col
}
