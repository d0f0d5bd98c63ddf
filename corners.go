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

// VelocityAtCorners interpolates both velocity components onto the cell
// corners (xF, yF), collocated with the Streamfunction and Vorticity
// output. Each component is already face-located along one axis, so only a
// two-point average along its centre-located axis is needed; the first and
// last corner along that axis take the nearest face sample unchanged. Both
// returned fields have shape (m, n).
func VelocityAtCorners(u, v *sparse.DenseArray, xC, xF, yC, yF []float64) (uc, vc *sparse.DenseArray) {
	m, n := checkCGrid(u, v, xC, xF, yC, yF)

	uc = sparse.ZerosDense(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			switch j {
			case 0:
				uc.Set(u.Get(i, 0), i, j)
			case n - 1:
				uc.Set(u.Get(i, n-2), i, j)
			default:
				uc.Set((u.Get(i, j)+u.Get(i, j-1))/2, i, j)
			}
		}
	}

	vc = sparse.ZerosDense(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			switch i {
			case 0:
				vc.Set(v.Get(0, j), i, j)
			case m - 1:
				vc.Set(v.Get(m-2, j), i, j)
			default:
				vc.Set((v.Get(i, j)+v.Get(i-1, j))/2, i, j)
			}
		}
	}
	return uc, vc
}
