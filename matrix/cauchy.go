package matrix

import "github.com/rizkytaufiq/rscore/field"

// Cauchy returns the rows x cols matrix with entry[i][j] =
// f.Inv(f.Add(x_i, y_j)), where x_i = start+i ranges over [start,
// start+rows) and y_j = start+rows+j ranges over [start+rows,
// start+rows+cols). The two ranges are disjoint, so x_i XOR y_j is never
// zero (XOR is zero only when the operands are equal), and every entry
// is well-defined. Callers must ensure start+rows+cols <= 256 so every
// index fits in a byte.
func Cauchy(start, rows, cols int, f field.Field) Matrix {
	m := Zero(rows, cols)
	for i := 0; i < rows; i++ {
		xi := byte(start + i)
		for j := 0; j < cols; j++ {
			yj := byte(start + rows + j)
			// Inv cannot fail here: xi and yj are drawn from disjoint
			// ranges, so their XOR is never zero.
			v, _ := f.Inv(f.Add(xi, yj))
			m.data[i][j] = v
		}
	}
	return m
}

// PartialCauchy is Cauchy(0, len(mask), cols, f) restricted to the rows
// where mask[i] is true, in index order. x_i retains the row's original
// index (i, not its compacted position) so the result is exactly the
// corresponding rows of the full matrix, required for the recovery
// matrix construction in the rs package to line up with the generator
// matrix it was built from.
func PartialCauchy(mask []bool, cols int, f field.Field) Matrix {
	rows := len(mask)
	kept := countTrue(mask)
	m := Zero(kept, cols)
	r := 0
	for i, keep := range mask {
		if !keep {
			continue
		}
		xi := byte(i)
		for j := 0; j < cols; j++ {
			yj := byte(rows + j)
			v, _ := f.Inv(f.Add(xi, yj))
			m.data[r][j] = v
		}
		r++
	}
	return m
}
