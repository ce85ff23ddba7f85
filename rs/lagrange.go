package rs

import (
	"github.com/rizkytaufiq/rscore/field"
	"github.com/rizkytaufiq/rscore/matrix"
)

// buildGeneratorLagrange builds the (k+m) x k generator matrix directly
// from the Lagrange basis polynomials for nodes x_0..x_{k-1} = 0..k-1:
//
//	G[i][j] = basis_j(i) = prod_{l != j} (i - x_l) / (x_j - x_l)
//
// Row i of G gives the coefficients that turn the k data symbols into
// column i of a stripe; by construction this is the unique degree-<k
// polynomial through the data points evaluated at x=i, so rows 0..k-1
// reduce to the identity without any further conditioning step.
func buildGeneratorLagrange(enc Encoding, f field.Field) matrix.Matrix {
	k, width := enc.K, enc.Width()
	data := make([][]byte, width)
	for i := 0; i < width; i++ {
		row := make([]byte, k)
		x := byte(i)
		for j := 0; j < k; j++ {
			numerator := f.One()
			denominator := f.One()
			for l := 0; l < k; l++ {
				if l == j {
					continue
				}
				xl := byte(l)
				numerator = f.Mul(numerator, f.Add(x, xl))
				denominator = f.Mul(denominator, f.Add(byte(j), xl))
			}
			denomInv, _ := f.Inv(denominator) // denominator != 0: l-loop skips j, nodes are distinct
			row[j] = f.Mul(numerator, denomInv)
		}
		data[i] = row
	}
	return matrix.New(data)
}
