// Package shamir implements word-based secret sharing on top of the rs
// package's Reed-Solomon codec: a secret of L words and n distribution
// shards, any k of which reconstruct the secret, rendered as
// whitespace-separated words from a 256-entry Vocabulary rather than raw
// bytes.
//
// The construction reuses the codec's own column convention instead of
// adding a parallel one: Generate draws k random bytes per word position
// and runs them through a (k, n-k+1)-encoding Codec, so the resulting
// stripe has n+1 columns, 0..n. Column 0 is the secret, columns 1..n are
// the shards; any k of the n+1 columns suffice to recover the rest,
// exactly as rs.Codec.Decode already guarantees for an erasure mask.
package shamir

import (
	"crypto/rand"
	"runtime"
	"strings"

	"github.com/rizkytaufiq/rscore/field"
	"github.com/rizkytaufiq/rscore/rserr"
	"github.com/rizkytaufiq/rscore/rs"
)

// zeroBytes overwrites b with zeros. Used on the random coefficient
// buffer after it has been encoded into shards, and on the recovered
// data buffer after the secret has been extracted from it, so secret
// material doesn't linger in memory longer than it has to.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Slot is one positional entry in a Restore call: either a shard's word
// string, or a hole (Present == false) for a shard that was not
// supplied.
type Slot struct {
	Words   string
	Present bool
}

func encoding(n, k int) (rs.Encoding, error) {
	if k < 1 || n < k || n+1 > 256 {
		return rs.Encoding{}, rserr.ErrBadEncoding
	}
	return rs.Encoding{K: k, M: n - k + 1}, nil
}

// Generate produces a secret of l words and n shards, any k of which
// (together with the secret's own column, if present) reconstruct the
// rest. Requires n >= k >= 1 and n+1 <= 256.
func Generate(voc Vocabulary, n, k, l int) (secret string, shards []string, err error) {
	enc, err := encoding(n, k)
	if err != nil {
		return "", nil, err
	}
	if l < 1 {
		return "", nil, rserr.ErrBadEncoding
	}

	data := make([]byte, k*l)
	if _, err := rand.Read(data); err != nil {
		return "", nil, err
	}
	defer zeroBytes(data)

	codec, err := rs.NewCodec(enc, field.NewTable(), rs.Vandermonde)
	if err != nil {
		return "", nil, err
	}
	coded := codec.Encode(data)

	columns := make([][]byte, enc.Width())
	for j := range columns {
		columns[j] = make([]byte, l)
	}
	for i, stripe := range coded.Codes {
		for j := range columns {
			columns[j][i] = stripe[j]
		}
	}

	secret = wordsFor(voc, columns[0])
	shards = make([]string, n)
	for j := 1; j <= n; j++ {
		shards[j-1] = wordsFor(voc, columns[j])
	}
	return secret, shards, nil
}

// Restore reconstructs the secret from slots, a positional list of
// length n+1 (column 0 is the secret's own slot, columns 1..n are the
// shards) where each entry is either a word string or a hole. At least k
// of the n+1 slots must be present.
func Restore(voc Vocabulary, slots []Slot, k int) (string, error) {
	n := len(slots) - 1
	enc, err := encoding(n, k)
	if err != nil {
		return "", err
	}

	l := 0
	for _, s := range slots {
		if s.Present {
			if words := strings.Fields(s.Words); len(words) > l {
				l = len(words)
			}
		}
	}
	if l == 0 {
		return "", rserr.ErrTooManyErasures
	}

	valid := make([]bool, enc.Width())
	columnWords := make([][]string, enc.Width())
	for j, s := range slots {
		if !s.Present {
			continue
		}
		words := strings.Fields(s.Words)
		if len(words) != l {
			return "", rserr.ErrBadVocabulary
		}
		valid[j] = true
		columnWords[j] = words
	}

	stripes := make([][]byte, l)
	for i := range stripes {
		stripe := make([]byte, enc.Width())
		for j := 0; j < enc.Width(); j++ {
			if !valid[j] {
				continue
			}
			b, err := voc.Byte(columnWords[j][i])
			if err != nil {
				return "", err
			}
			stripe[j] = b
		}
		stripes[i] = stripe
	}

	coded := rs.CodedStream{
		Length:   k * l,
		Encoding: enc,
		Codes:    stripes,
		Valid:    valid,
	}

	codec, err := rs.NewCodec(enc, field.NewTable(), rs.Vandermonde)
	if err != nil {
		return "", err
	}
	data, err := codec.Decode(coded)
	if err != nil {
		return "", err
	}
	defer zeroBytes(data)

	secretBytes := make([]byte, l)
	defer zeroBytes(secretBytes)
	for i := 0; i < l; i++ {
		secretBytes[i] = data[i*k]
	}
	return wordsFor(voc, secretBytes), nil
}

func wordsFor(voc Vocabulary, bs []byte) string {
	words := make([]string, len(bs))
	for i, b := range bs {
		words[i] = voc.Word(b)
	}
	return strings.Join(words, " ")
}
