// Package matrix implements rectangular matrices of GF(2^8) field
// elements: multiplication, transpose, Gauss-Jordan inversion, and the
// Vandermonde/Cauchy constructors the rs package uses to build MDS
// generator matrices.
package matrix

import (
	"github.com/rizkytaufiq/rscore/field"
	"github.com/rizkytaufiq/rscore/rserr"
)

// Matrix is a rows x cols grid of field elements. A Matrix exclusively
// owns its storage; every row has the same length. Mutation is limited
// to the row-operation primitives used internally by Invert.
type Matrix struct {
	rows, cols int
	data       [][]byte
}

// New builds a Matrix from row-major data. Each row is copied so the
// Matrix owns independent storage. All rows must have the same length.
func New(data [][]byte) Matrix {
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}
	out := make([][]byte, rows)
	for i, row := range data {
		out[i] = make([]byte, cols)
		copy(out[i], row)
	}
	return Matrix{rows: rows, cols: cols, data: out}
}

// Zero returns an r x c matrix of zeros.
func Zero(r, c int) Matrix {
	data := make([][]byte, r)
	for i := range data {
		data[i] = make([]byte, c)
	}
	return Matrix{rows: r, cols: c, data: data}
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	m := Zero(n, n)
	for i := 0; i < n; i++ {
		m.data[i][i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// At returns the element at (row, col).
func (m Matrix) At(row, col int) byte { return m.data[row][col] }

// Row returns a copy of row i.
func (m Matrix) Row(i int) []byte {
	out := make([]byte, m.cols)
	copy(out, m.data[i])
	return out
}

// SubRows returns the rows [start, end) as their own Matrix, e.g. to
// split a generator matrix into its identity-block and code-block halves.
func (m Matrix) SubRows(start, end int) Matrix {
	out := Zero(end-start, m.cols)
	for i := start; i < end; i++ {
		copy(out.data[i-start], m.data[i])
	}
	return out
}

// Mul returns a*b using the given field. Requires a.cols == b.rows.
func Mul(a, b Matrix, f field.Field) (Matrix, error) {
	if a.cols != b.rows {
		return Matrix{}, rserr.ErrDimensionMismatch
	}
	out := Zero(a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			aik := a.data[i][k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				out.data[i][j] = f.Add(out.data[i][j], f.Mul(aik, b.data[k][j]))
			}
		}
	}
	return out, nil
}

// MulVec computes a*x into the preallocated out buffer, avoiding
// allocation on the hot per-stripe encode path. Requires a.cols ==
// len(x) and len(out) == a.rows.
func MulVec(a Matrix, x []byte, out []byte, f field.Field) error {
	if a.cols != len(x) || len(out) != a.rows {
		return rserr.ErrDimensionMismatch
	}
	for i := 0; i < a.rows; i++ {
		var acc byte
		row := a.data[i]
		for k := 0; k < a.cols; k++ {
			if row[k] == 0 || x[k] == 0 {
				continue
			}
			acc = f.Add(acc, f.Mul(row[k], x[k]))
		}
		out[i] = acc
	}
	return nil
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	out := Zero(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j][i] = m.data[i][j]
		}
	}
	return out
}

// swapRows exchanges the stored rows i and j in place. This must swap the
// actual row storage (the slice headers held by m.data), not local
// references to them: swapping copies of the slice headers without
// writing back to m.data leaves the matrix unchanged and silently breaks
// pivot selection during Invert.
func (m *Matrix) swapRows(i, j int) {
	m.data[i], m.data[j] = m.data[j], m.data[i]
}

// Invert computes the inverse of m via Gauss-Jordan elimination:
// augment m with the identity on the right, row-reduce the left half to
// the identity, and return what remains on the right. Returns
// ErrSingular if some column has no nonzero pivot at or below its row.
func (m Matrix) Invert(f field.Field) (Matrix, error) {
	n := m.rows
	if n != m.cols {
		return Matrix{}, rserr.ErrDimensionMismatch
	}

	aug := Zero(n, 2*n)
	for i := 0; i < n; i++ {
		copy(aug.data[i][:n], m.data[i])
		aug.data[i][n+i] = 1
	}

	for col := 0; col < n; col++ {
		pivotRow := -1
		for r := col; r < n; r++ {
			if aug.data[r][col] != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow == -1 {
			return Matrix{}, rserr.ErrSingular
		}
		if pivotRow != col {
			aug.swapRows(pivotRow, col)
		}

		pivotInv, err := f.Inv(aug.data[col][col])
		if err != nil {
			return Matrix{}, rserr.ErrSingular
		}
		for j := 0; j < 2*n; j++ {
			aug.data[col][j] = f.Mul(aug.data[col][j], pivotInv)
		}

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug.data[r][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				// Subtraction is addition in GF(2^8).
				aug.data[r][j] = f.Add(aug.data[r][j], f.Mul(factor, aug.data[col][j]))
			}
		}
	}

	out := Zero(n, n)
	for i := 0; i < n; i++ {
		copy(out.data[i], aug.data[i][n:])
	}
	return out, nil
}
