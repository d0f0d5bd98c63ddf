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

// Divergence calculates the discrete divergence du/dx + dv/dy of the flow
// at the cell centres (xC, yC), so the returned field has shape (m-1, n-1).
// On this staggering the faces of each cell hold exactly the velocity
// samples its divergence needs, so each value is the net flux out of one
// cell divided by its area. For a flow that admits a stream function the
// result is the incompressibility residual and should vanish to rounding
// error.
func Divergence(u, v *sparse.DenseArray, xC, xF, yC, yF []float64) *sparse.DenseArray {
	m, n := checkCGrid(u, v, xC, xF, yC, yF)

	div := sparse.ZerosDense(m-1, n-1)
	dx := spacing(xF)
	dy := spacing(yF)
	for i := 0; i < m-1; i++ {
		for j := 0; j < n-1; j++ {
			div.Set((u.Get(i+1, j)-u.Get(i, j))/dx[i]+
				(v.Get(i, j+1)-v.Get(i, j))/dy[j], i, j)
		}
	}
	return div
}
