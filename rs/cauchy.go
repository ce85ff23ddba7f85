package rs

import (
	"github.com/rizkytaufiq/rscore/field"
	"github.com/rizkytaufiq/rscore/matrix"
)

// buildGeneratorCauchy builds the (k+m) x k generator matrix from a full
// Cauchy matrix conditioned so its top k rows reduce to the identity:
// C_full * C_top^-1, mirroring buildGeneratorVandermonde but starting
// from matrix.Cauchy instead of matrix.Vandermonde.
//
// Because a Cauchy matrix's entries are rational functions of disjoint
// row/column index sets rather than monomial powers, the conditioned
// result is a different (k+m) x k matrix than Vandermonde/Lagrange
// produce: both are valid MDS generators with identity data rows, but
// they do not generally emit byte-identical code symbols for the same
// input. Round-trip correctness (encode then decode recovers the
// original bytes, including under erasures) holds for each variant on
// its own regardless.
func buildGeneratorCauchy(enc Encoding, f field.Field) (matrix.Matrix, error) {
	k, width := enc.K, enc.Width()
	full := matrix.Cauchy(0, width, k, f)
	if k == 0 {
		return full, nil
	}

	// top must be exactly full's leading k rows, so its y_j column
	// offsets (which depend on the total row count) line up with full's.
	// matrix.Cauchy(0, k, k, f) would instead offset columns by k, a
	// different matrix; PartialCauchy with a mask selecting the first k
	// of width rows keeps the width-relative offset intact.
	topMask := make([]bool, width)
	for i := 0; i < k; i++ {
		topMask[i] = true
	}
	top := matrix.PartialCauchy(topMask, k, f)

	topInv, err := top.Invert(f)
	if err != nil {
		return matrix.Matrix{}, err
	}
	return matrix.Mul(full, topInv, f)
}
