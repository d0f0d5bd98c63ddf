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

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// Streamfunction reconstructs the stream function ψ at the cell corners
// (xF, yF) by directly integrating its definition with an explicit first
// order difference scheme. For velocity components u (x-direction) and
// v (y-direction),
//
//	dψ/dy = u
//	dψ/dx = -v
//
// psiBot (length m) and psiLeft (length n) hold the boundary values of ψ
// along the bottom row and left column of corners; they must agree at the
// shared origin corner. The returned field has shape (m, n).
//
// The interior is filled in two passes: a forward integration in y seeded
// from the bottom boundary, then a forward integration in x seeded from the
// left boundary. The x pass overwrites the interior, so the final interior
// values come from the x integration path while the bottom and left
// boundaries are kept exactly as given. Both passes write interior indices
// only; the pass order and index ranges determine the result and must not
// be rearranged.
func Streamfunction(u, v *sparse.DenseArray, xC, xF, yC, yF, psiBot, psiLeft []float64) *sparse.DenseArray {
	m, n := checkCGrid(u, v, xC, xF, yC, yF)
	if len(psiBot) != m {
		panic(fmt.Errorf("streamfunctions: psiBot must have length %d but has length %d", m, len(psiBot)))
	}
	if len(psiLeft) != n {
		panic(fmt.Errorf("streamfunctions: psiLeft must have length %d but has length %d", n, len(psiLeft)))
	}
	if psiBot[0] != psiLeft[0] {
		panic(fmt.Errorf("streamfunctions: psiBot[0] (%g) and psiLeft[0] (%g) must match at the origin corner", psiBot[0], psiLeft[0]))
	}

	psi := sparse.ZerosDense(m, n)
	for i, b := range psiBot {
		psi.Set(b, i, 0)
	}
	// Integrate dψ/dy = u upward from the bottom boundary.
	dy := spacing(yF)
	for k := 0; k < n-1; k++ {
		for i := 1; i < m-1; i++ {
			psi.Set(psi.Get(i, k)+u.Get(i, k)*dy[k], i, k+1)
		}
	}
	for j, l := range psiLeft {
		psi.Set(l, 0, j)
	}
	// Integrate dψ/dx = -v rightward from the left boundary.
	dx := spacing(xF)
	for k := 0; k < m-1; k++ {
		for j := 1; j < n-1; j++ {
			psi.Set(psi.Get(k, j)-v.Get(k, j)*dx[k], k+1, j)
		}
	}
	return psi
}
