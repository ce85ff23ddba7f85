package shamir

import (
	"bufio"
	_ "embed"
	"io"
	"strings"

	"github.com/rizkytaufiq/rscore/rserr"
)

// VocabularySize is the number of distinct words a Vocabulary maps onto,
// one per possible byte value.
const VocabularySize = 256

//go:embed words.txt
var defaultWords string

// Vocabulary is a bidirectional byte <-> word mapping used to render
// Shamir shards as whitespace-separated human-readable text instead of
// raw bytes.
type Vocabulary struct {
	words [VocabularySize]string
	index map[string]byte
}

// DefaultVocabulary returns the vocabulary embedded in the binary, so
// Generate and Restore work without any external wordlist file.
func DefaultVocabulary() Vocabulary {
	v, err := newVocabulary(splitLines(defaultWords))
	if err != nil {
		// The embedded list is fixed at build time and already validated
		// by its own test; a failure here means the embed itself is
		// broken, not a runtime condition callers can recover from.
		panic(err)
	}
	return v
}

// LoadVocabulary reads a wordlist: UTF-8 text, one word per line, blank
// lines skipped, the first 256 non-blank lines taken as the vocabulary.
// Fewer than 256 distinct words is ErrBadVocabulary.
func LoadVocabulary(r io.Reader) (Vocabulary, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() && len(lines) < VocabularySize {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return Vocabulary{}, err
	}
	return newVocabulary(lines)
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func newVocabulary(words []string) (Vocabulary, error) {
	if len(words) != VocabularySize {
		return Vocabulary{}, rserr.ErrBadVocabulary
	}
	var v Vocabulary
	v.index = make(map[string]byte, VocabularySize)
	for i, w := range words {
		if _, dup := v.index[w]; dup {
			return Vocabulary{}, rserr.ErrBadVocabulary
		}
		v.words[i] = w
		v.index[w] = byte(i)
	}
	return v, nil
}

// Word returns the word for byte b.
func (v Vocabulary) Word(b byte) string {
	return v.words[b]
}

// Byte returns the byte w was assigned, or ErrBadVocabulary if w is not
// in the vocabulary.
func (v Vocabulary) Byte(w string) (byte, error) {
	b, ok := v.index[w]
	if !ok {
		return 0, rserr.ErrBadVocabulary
	}
	return b, nil
}
