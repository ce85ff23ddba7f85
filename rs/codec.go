// Package rs implements Reed-Solomon erasure coding over GF(2^8): an
// Encoding descriptor, a CodedStream data model, and a Codec that
// encodes a byte buffer into k+m-wide stripes and decodes it back given
// up to m erasures.
//
// All three Codec variants (Lagrange, Vandermonde, Cauchy) share one
// matrix-driven core: each builds a (k+m) x k generator matrix G whose
// top k rows are the identity, then Encode/Decode operate identically
// on G regardless of how it was constructed. See lagrange.go,
// vandermonde.go, and cauchy.go for the three constructions.
package rs

import (
	"github.com/rizkytaufiq/rscore/chunker"
	"github.com/rizkytaufiq/rscore/field"
	"github.com/rizkytaufiq/rscore/matrix"
	"github.com/rizkytaufiq/rscore/rserr"
)

// Variant selects how a Codec's generator matrix is constructed. All
// three are semantically interchangeable: each produces a valid MDS
// generator matrix, so any k of k+m columns suffice to recover the
// original data.
type Variant int

const (
	// Lagrange builds the generator directly from Lagrange basis
	// polynomials over nodes 0..k-1.
	Lagrange Variant = iota
	// Vandermonde builds the generator from a Vandermonde matrix
	// conditioned so its top k rows are the identity. Produces
	// byte-identical codes to Lagrange, since both describe the same
	// unique degree-<k polynomial evaluated at the same points.
	Vandermonde
	// Cauchy builds the generator from a Cauchy matrix conditioned the
	// same way. A distinct, equally valid MDS generator; its code bytes
	// generally differ from Lagrange/Vandermonde's for the same input.
	Cauchy
)

// Codec encodes and decodes stripes for one (Encoding, Field, Variant)
// combination. The generator matrix is precomputed once at construction
// and reused across every stripe of every Encode/Decode call.
type Codec struct {
	encoding  Encoding
	field     field.Field
	generator matrix.Matrix
	bottom    matrix.Matrix // generator's last m rows, cached for Encode's hot path
}

// NewCodec builds a Codec for enc using f, with the generator matrix
// constructed the way variant specifies. Construction returns
// ErrBadEncoding for an unknown variant, or for Cauchy when 2k+m > 256
// (its row and column index sets would not fit in a byte). Otherwise it
// fails only if the generator's top-k conditioning block is singular,
// which should not happen for valid (k, m) under any of the three
// variants; seeing it indicates a bug, not a legitimate runtime condition.
func NewCodec(enc Encoding, f field.Field, variant Variant) (*Codec, error) {
	var (
		g   matrix.Matrix
		err error
	)
	switch variant {
	case Lagrange:
		g = buildGeneratorLagrange(enc, f)
	case Vandermonde:
		g, err = buildGeneratorVandermonde(enc, f)
	case Cauchy:
		if 2*enc.K+enc.M > 256 {
			return nil, rserr.ErrBadEncoding
		}
		g, err = buildGeneratorCauchy(enc, f)
	default:
		return nil, rserr.ErrBadEncoding
	}
	if err != nil {
		return nil, err
	}
	bottom := g.SubRows(enc.K, enc.Width())
	return &Codec{encoding: enc, field: f, generator: g, bottom: bottom}, nil
}

// Encode walks bytes in chunks of k bytes (zero-padding the last chunk),
// and for each chunk emits a stripe of k+m bytes: the chunk verbatim
// followed by m code bytes computed as generator * chunk. An empty input
// returns an empty stream.
func (c *Codec) Encode(bytes []byte) CodedStream {
	if len(bytes) == 0 {
		return CodedStream{Length: 0, Encoding: c.encoding, Codes: nil, Valid: nil}
	}

	k, m, width := c.encoding.K, c.encoding.M, c.encoding.Width()
	ch := chunker.Padded(bytes, k, 0)

	var stripes [][]byte
	code := make([]byte, m)
	for {
		data, ok := ch.Next()
		if !ok {
			break
		}
		stripe := make([]byte, width)
		copy(stripe[:k], data)
		if m > 0 {
			if err := matrix.MulVec(c.bottom, data, code, c.field); err != nil {
				// Shapes are fixed at construction time; this cannot fail.
				panic(err)
			}
			copy(stripe[k:], code)
		}
		stripes = append(stripes, stripe)
	}

	return CodedStream{Length: len(bytes), Encoding: c.encoding, Codes: stripes, Valid: nil}
}

// Decode recovers the original bytes from a coded stream with up to m
// erasures. If fewer than k columns are valid, returns
// ErrTooManyErasures.
func (c *Codec) Decode(coded CodedStream) ([]byte, error) {
	if coded.Encoding != c.encoding {
		return nil, rserr.ErrBadEncoding
	}
	if coded.Length == 0 {
		return nil, nil
	}

	k := c.encoding.K
	indices, ok := coded.lowestValidIndices(k)
	if !ok {
		return nil, rserr.ErrTooManyErasures
	}

	out := make([]byte, 0, len(coded.Codes)*k)

	if isIdentityPrefix(indices) {
		for _, stripe := range coded.Codes {
			out = append(out, stripe[:k]...)
		}
		return truncate(out, coded.Length), nil
	}

	recovery, err := c.recoveryMatrix(indices)
	if err != nil {
		return nil, err
	}

	s := make([]byte, k)
	d := make([]byte, k)
	for _, stripe := range coded.Codes {
		for i, col := range indices {
			s[i] = stripe[col]
		}
		if err := matrix.MulVec(recovery, s, d, c.field); err != nil {
			return nil, err
		}
		out = append(out, d...)
	}
	return truncate(out, coded.Length), nil
}

// recoveryMatrix builds H, the k x k matrix of the generator's rows at
// indices, and returns its inverse. H^-1 * s recovers the k data symbols
// from any k valid columns of a stripe, generalizing the identity-rows
// fast path to an arbitrary choice of valid columns: H reduces to the
// identity exactly when indices == [0..k), making the fast path a
// special case of this same formula rather than a separate algorithm.
func (c *Codec) recoveryMatrix(indices []int) (matrix.Matrix, error) {
	rows := make([][]byte, len(indices))
	for i, idx := range indices {
		rows[i] = c.generator.Row(idx)
	}
	h := matrix.New(rows)
	inv, err := h.Invert(c.field)
	if err != nil {
		return matrix.Matrix{}, rserr.ErrSingular
	}
	return inv, nil
}

func truncate(b []byte, length int) []byte {
	if length > len(b) {
		length = len(b)
	}
	return b[:length]
}
