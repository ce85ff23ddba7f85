// Package rserr defines the sentinel error kinds shared across the
// field, polynomial, matrix, rs, and shamir packages. Keeping them in one
// place lets callers at any layer use errors.Is against a single set of
// kinds instead of depending on package-local variables.
package rserr

import "errors"

var (
	// ErrDivideByZero is returned by Field.Div and Field.Inv when the
	// divisor (or the value being inverted) is the field's zero element.
	ErrDivideByZero = errors.New("rscore: divide by zero in GF(2^8)")

	// ErrDimensionMismatch is returned by Matrix.Mul and Matrix.MulVec
	// when the operand shapes are incompatible.
	ErrDimensionMismatch = errors.New("rscore: matrix dimension mismatch")

	// ErrSingular is returned by Matrix.Invert when no pivot can be found
	// for some column. For the generator matrices this package builds
	// (Vandermonde, Cauchy) this should never happen; seeing it indicates
	// a bug in generator construction, not a legitimate runtime failure.
	ErrSingular = errors.New("rscore: matrix is singular")

	// ErrBadEncoding is returned when an "rs=k.m" string fails to parse
	// or violates the k+m <= 255 sum bound.
	ErrBadEncoding = errors.New("rscore: malformed encoding string")

	// ErrTooManyErasures is returned by a codec's Decode when fewer than
	// k columns of a coded stream are marked valid.
	ErrTooManyErasures = errors.New("rscore: too many erasures to recover stripe")

	// ErrBadVocabulary is returned when a wordlist has fewer than 256
	// entries, contains duplicates, or restore encounters a word outside
	// the vocabulary.
	ErrBadVocabulary = errors.New("rscore: invalid word vocabulary")
)
