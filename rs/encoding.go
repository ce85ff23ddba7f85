package rs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rizkytaufiq/rscore/rserr"
)

// Encoding is the pair (K data symbols, M code symbols) describing a
// stripe's shape. String form is "rs=K.M".
type Encoding struct {
	K int
	M int
}

// String renders the encoding as "rs=K.M".
func (e Encoding) String() string {
	return fmt.Sprintf("rs=%d.%d", e.K, e.M)
}

// Width is the total stripe width, K+M.
func (e Encoding) Width() int {
	return e.K + e.M
}

// ParseEncoding parses "rs=K.M" into an Encoding. K and M must be
// non-negative integers with K+M <= 255 (the field has only 256
// elements, one per column). ParseEncoding does not otherwise constrain
// K or M: callers must still ensure K >= 1 before encoding.
func ParseEncoding(s string) (Encoding, error) {
	const prefix = "rs="
	if !strings.HasPrefix(s, prefix) {
		return Encoding{}, rserr.ErrBadEncoding
	}
	rest := s[len(prefix):]
	parts := strings.SplitN(rest, ".", 2)
	if len(parts) != 2 {
		return Encoding{}, rserr.ErrBadEncoding
	}
	k, err := strconv.Atoi(parts[0])
	if err != nil || k < 0 {
		return Encoding{}, rserr.ErrBadEncoding
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 {
		return Encoding{}, rserr.ErrBadEncoding
	}
	if k+m > 255 {
		return Encoding{}, rserr.ErrBadEncoding
	}
	return Encoding{K: k, M: m}, nil
}
