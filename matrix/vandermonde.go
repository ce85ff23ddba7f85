package matrix

import "github.com/rizkytaufiq/rscore/field"

// Vandermonde returns the rows x cols matrix whose row i (0-based)
// contains f.Exp(start+i, j) for j in [0, cols). Distinct start+i values
// (zero included) make any cols of its rows an invertible square submatrix,
// the MDS property the rs package's generator matrices rely on.
func Vandermonde(start, rows, cols int, f field.Field) Matrix {
	m := Zero(rows, cols)
	for i := 0; i < rows; i++ {
		x := byte(start + i)
		for j := 0; j < cols; j++ {
			m.data[i][j] = f.Exp(x, j)
		}
	}
	return m
}

// PartialVandermonde is Vandermonde(0, len(mask), cols, f) restricted to
// the rows where mask[i] is true, in index order.
func PartialVandermonde(mask []bool, cols int, f field.Field) Matrix {
	rows := countTrue(mask)
	m := Zero(rows, cols)
	r := 0
	for i, keep := range mask {
		if !keep {
			continue
		}
		x := byte(i)
		for j := 0; j < cols; j++ {
			m.data[r][j] = f.Exp(x, j)
		}
		r++
	}
	return m
}

func countTrue(mask []bool) int {
	n := 0
	for _, b := range mask {
		if b {
			n++
		}
	}
	return n
}
