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
	"testing"

	"github.com/ctessum/sparse"
)

func TestDivergence(t *testing.T) {
	const tolerance = 1.0e-10

	tests := []struct {
		name           string
		u, v           *sparse.DenseArray
		xC, xF, yC, yF []float64
		want           *sparse.DenseArray
	}{
		{
			name: "uniform flow",
			u: denseFromRows(
				[]float64{2, 2},
				[]float64{2, 2},
				[]float64{2, 2},
			),
			v: denseFromRows(
				[]float64{3, 3, 3},
				[]float64{3, 3, 3},
			),
			xC:   []float64{0.5, 1.5},
			xF:   []float64{0, 1, 2},
			yC:   []float64{0.5, 1.5},
			yF:   []float64{0, 1, 2},
			want: sparse.ZerosDense(2, 2),
		},
		{
			// u = x stretches and v = -y compresses at the same rate, so the
			// flow is incompressible on any grid, uniform or not.
			name: "incompressible straining flow",
			u: denseFromRows(
				[]float64{0, 0},
				[]float64{1, 1},
				[]float64{3, 3},
			),
			v: denseFromRows(
				[]float64{0, -2, -3},
				[]float64{0, -2, -3},
			),
			xC:   []float64{0.5, 2},
			xF:   []float64{0, 1, 3},
			yC:   []float64{1, 2.5},
			yF:   []float64{0, 2, 3},
			want: sparse.ZerosDense(2, 2),
		},
		{
			// u = 2x alone gives a constant source strength of 2.
			name: "uniform expansion",
			u: denseFromRows(
				[]float64{0, 0},
				[]float64{2, 2},
				[]float64{6, 6},
			),
			v:  sparse.ZerosDense(2, 3),
			xC: []float64{0.5, 2},
			xF: []float64{0, 1, 3},
			yC: []float64{1, 2.5},
			yF: []float64{0, 2, 3},
			want: denseFromRows(
				[]float64{2, 2},
				[]float64{2, 2},
			),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			div := Divergence(test.u, test.v, test.xC, test.xF, test.yC, test.yF)
			arrayCompare(div, test.want, tolerance, test.name, t)
		})
	}
}

func TestVelocityAtCorners(t *testing.T) {
	const tolerance = 1.0e-10

	u := denseFromRows(
		[]float64{1, 2},
		[]float64{3, 4},
		[]float64{5, 6},
	)
	v := denseFromRows(
		[]float64{1, 2, 3},
		[]float64{4, 5, 6},
	)
	xC := []float64{0.5, 1.5}
	xF := []float64{0, 1, 2}
	yC := []float64{0.5, 1.5}
	yF := []float64{0, 1, 2}

	uc, vc := VelocityAtCorners(u, v, xC, xF, yC, yF)

	ucWant := denseFromRows(
		[]float64{1, 1.5, 2},
		[]float64{3, 3.5, 4},
		[]float64{5, 5.5, 6},
	)
	arrayCompare(uc, ucWant, tolerance, "u at corners", t)

	vcWant := denseFromRows(
		[]float64{1, 2, 3},
		[]float64{2.5, 3.5, 4.5},
		[]float64{4, 5, 6},
	)
	arrayCompare(vc, vcWant, tolerance, "v at corners", t)
}
