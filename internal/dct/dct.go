package dct

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DCT is an orthonormal 2-D DCT-II over square blocks of a fixed size.
// The transform is separable: C = Φ X Φᵀ and X = Φᵀ C Φ.
type DCT struct {
	n   int
	phi *mat.Dense
}

func New(n int) *DCT {
	nf := float64(n)
	basis := make([]float64, n*n)
	for j := range n {
		// k = 0
		basis[j] = 1.0 / math.Sqrt(nf)
	}
	for k := 1; k < n; k++ {
		for j := range n {
			basis[k*n+j] = math.Sqrt(2.0/nf) *
				math.Cos(
					(float64(k)*math.Pi*(float64(j)*2+1))/
						(2.0*nf),
				)
		}
	}
	return &DCT{n: n, phi: mat.NewDense(n, n, basis)}
}

func (d *DCT) Size() int { return d.n }

// Exec transforms the row-major block data and returns its coefficients,
// indexed (u, v) with u the vertical frequency.
// The returned function writes the inverse transform of the (possibly
// modified) coefficients back into data.
func (d *DCT) Exec(data []float64) (*mat.Dense, func()) {
	x := mat.NewDense(d.n, d.n, data)
	var tmp, coef mat.Dense
	tmp.Mul(d.phi, x)
	coef.Mul(&tmp, d.phi.T())

	idct := func() {
		var t mat.Dense
		t.Mul(d.phi.T(), &coef)
		out := mat.NewDense(d.n, d.n, data)
		out.Mul(&t, d.phi)
	}
	return &coef, idct
}
