package rs

import (
	"github.com/rizkytaufiq/rscore/field"
	"github.com/rizkytaufiq/rscore/matrix"
)

// buildGeneratorVandermonde builds the (k+m) x k generator matrix from a
// full Vandermonde matrix conditioned so its top k rows reduce to the
// identity: V_full * V_top^-1, where V_top is V_full's leading k x k
// block. V_top is invertible because distinct evaluation points (here
// 0..k-1) make any square Vandermonde submatrix nonsingular.
//
// This reproduces exactly the matrix buildGeneratorLagrange computes:
// both describe the unique degree-<k polynomial through the k data
// points, evaluated at x=0..k+m-1. The two variants differ only in how
// the matrix is derived, not in the result.
func buildGeneratorVandermonde(enc Encoding, f field.Field) (matrix.Matrix, error) {
	k, width := enc.K, enc.Width()
	full := matrix.Vandermonde(0, width, k, f)
	if k == 0 {
		return full, nil
	}
	top := matrix.Vandermonde(0, k, k, f)
	topInv, err := top.Invert(f)
	if err != nil {
		return matrix.Matrix{}, err
	}
	return matrix.Mul(full, topInv, f)
}
