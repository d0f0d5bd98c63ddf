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

package streamfunctions

import "github.com/ctessum/sparse"

// Vorticity calculates the vorticity of the flow at the cell corners
// (xF, yF). The vorticity is the curl of the velocity field,
//
//	ω = dv/dx - du/dy,
//
// computed with centred differences over the (possibly non-uniform) centre
// spacing. The first and last index along each differenced axis have no
// centred stencil and contribute zero to ω there: edge values carry only
// the term differenced along the other axis, and the four domain corners
// are exactly zero. The returned field has shape (m, n).
func Vorticity(u, v *sparse.DenseArray, xC, xF, yC, yF []float64) *sparse.DenseArray {
	m, n := checkCGrid(u, v, xC, xF, yC, yF)

	// The zero boundary rows and columns handle sides and corners.
	dvdx := sparse.ZerosDense(m, n)
	dxc := spacing(xC)
	for i := 1; i < m-1; i++ {
		for j := 0; j < n; j++ {
			dvdx.Set((v.Get(i, j)-v.Get(i-1, j))/dxc[i-1], i, j)
		}
	}
	dudy := sparse.ZerosDense(m, n)
	dyc := spacing(yC)
	for j := 1; j < n-1; j++ {
		for i := 0; i < m; i++ {
			dudy.Set((u.Get(i, j)-u.Get(i, j-1))/dyc[j-1], i, j)
		}
	}

	vort := dvdx
	for i, d := range dudy.Elements {
		vort.Elements[i] -= d
	}
	return vort
}
