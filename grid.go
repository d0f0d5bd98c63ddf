/*
Copyright © 2026 the streamfunctions authors.
This file is part of streamfunctions.

streamfunctions is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

streamfunctions is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with streamfunctions.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package streamfunctions computes derived scalar diagnostics of a 2-D
// velocity field sampled on a staggered (Arakawa C-type) grid: the stream
// function, the vorticity, and the divergence. Velocities live on cell
// faces; the stream function and vorticity are returned at cell corners and
// the divergence at cell centres.
//
// Grid convention: xF and yF hold the m and n face coordinates along each
// axis, and xC and yC hold the m-1 and n-1 centre coordinates between them.
// The x-velocity u has shape (m, n-1), sampled on vertical faces (xF, yC),
// and the y-velocity v has shape (m-1, n), sampled on horizontal faces
// (xC, yF). All functions are pure: they allocate a fresh output field and
// never modify their inputs, so they are safe to call concurrently.
package streamfunctions

import (
	"fmt"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// checkCGrid panics unless the velocity components and coordinate vectors
// satisfy the C-grid staggering contract described in the package
// documentation. It returns the face counts m = len(xF) and n = len(yF).
// A violation is a programming error in the caller, not a recoverable
// condition, so no partial result is ever produced.
func checkCGrid(u, v *sparse.DenseArray, xC, xF, yC, yF []float64) (m, n int) {
	m, n = len(xF), len(yF)
	if m < 2 || n < 2 {
		panic(fmt.Errorf("streamfunctions: need at least 2 faces along each axis but have %d×%d", m, n))
	}
	if len(u.Shape) != 2 || u.Shape[0] != m || u.Shape[1] != n-1 {
		panic(fmt.Errorf("streamfunctions: u must have shape [%d %d] but has shape %v", m, n-1, u.Shape))
	}
	if len(v.Shape) != 2 || v.Shape[0] != m-1 || v.Shape[1] != n {
		panic(fmt.Errorf("streamfunctions: v must have shape [%d %d] but has shape %v", m-1, n, v.Shape))
	}
	if len(xC) != m-1 {
		panic(fmt.Errorf("streamfunctions: xC must have length %d but has length %d", m-1, len(xC)))
	}
	if len(yC) != n-1 {
		panic(fmt.Errorf("streamfunctions: yC must have length %d but has length %d", n-1, len(yC)))
	}
	return m, n
}

// spacing returns the distances between consecutive coordinates.
func spacing(x []float64) []float64 {
	d := make([]float64, len(x)-1)
	floats.SubTo(d, x[1:], x[:len(x)-1])
	return d
}
