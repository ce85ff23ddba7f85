package rs

// CodedStream is the output of an RS encode and the input to an RS
// decode: the original byte count, the encoding used, the ordered
// stripes, and an erasure mask.
//
// Every stripe is exactly Encoding.Width() bytes: the first K are data,
// the last M are code. If Valid is non-empty it has length
// Encoding.Width(); Valid[i] == true means column i is trustworthy. An
// empty Valid means "all columns valid", the shape an encoder produces.
type CodedStream struct {
	Length   int
	Encoding Encoding
	Codes    [][]byte
	Valid    []bool
}

// validAt reports whether column i should be trusted, treating an empty
// Valid slice as "every column is valid" per the encoder-output
// convention.
func (c CodedStream) validAt(i int) bool {
	if len(c.Valid) == 0 {
		return true
	}
	return c.Valid[i]
}

// lowestValidIndices returns the k lowest column indices with
// validAt(i) == true, in ascending order, or ok == false if fewer than k
// such columns exist. A non-empty Valid shorter than Width() is treated
// as insufficient, never short-circuited into the fast path.
func (c CodedStream) lowestValidIndices(k int) (indices []int, ok bool) {
	width := c.Encoding.Width()
	if len(c.Valid) != 0 && len(c.Valid) < width {
		return nil, false
	}
	for i := 0; i < width && len(indices) < k; i++ {
		if c.validAt(i) {
			indices = append(indices, i)
		}
	}
	return indices, len(indices) == k
}

// isIdentityPrefix reports whether indices is exactly [0, 1, ..., k-1],
// the only case in which decode's fast path (skip matrix inversion
// entirely) applies.
func isIdentityPrefix(indices []int) bool {
	for i, v := range indices {
		if v != i {
			return false
		}
	}
	return true
}
