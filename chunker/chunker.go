// Package chunker groups a byte sequence into fixed-size windows, either
// strictly (the last window may be short) or padded (the last window is
// extended with a default value). It is single-pass: a Chunker consumes
// its input as it produces windows and cannot be restarted.
package chunker

// Chunker produces fixed-size windows over a byte slice.
type Chunker struct {
	data   []byte
	size   int
	pos    int
	pad    bool
	padVal byte
}

// Strict returns a Chunker whose last window, if input doesn't divide
// evenly by size, is shorter than size.
func Strict(data []byte, size int) *Chunker {
	return &Chunker{data: data, size: size}
}

// Padded returns a Chunker whose last window is always exactly size
// bytes, filled out with padVal when the input runs short.
func Padded(data []byte, size int, padVal byte) *Chunker {
	return &Chunker{data: data, size: size, pad: true, padVal: padVal}
}

// Next returns the next window and true, or nil and false once the input
// is exhausted. Each call advances the Chunker's position; Next cannot
// be called again with the same result.
func (c *Chunker) Next() ([]byte, bool) {
	if c.pos >= len(c.data) {
		return nil, false
	}
	end := c.pos + c.size
	if end > len(c.data) {
		end = len(c.data)
	}
	window := c.data[c.pos:end]
	c.pos = end

	if !c.pad || len(window) == c.size {
		return window, true
	}

	out := make([]byte, c.size)
	copy(out, window)
	for i := len(window); i < c.size; i++ {
		out[i] = c.padVal
	}
	return out, true
}

// All drains the Chunker into a slice of windows. Convenience for callers
// that don't need streaming behavior.
func All(c *Chunker) [][]byte {
	var out [][]byte
	for {
		w, ok := c.Next()
		if !ok {
			return out
		}
		out = append(out, w)
	}
}
