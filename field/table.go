package field

import "github.com/rizkytaufiq/rscore/rserr"

// Table precomputes the full 256x256 multiplication table and a 256-entry
// inverse table at construction time, trading memory for the fastest
// possible Mul/Div/Inv on the hot encode/decode path. It is the Field the
// Shamir layer builds its RS codec with.
type Table struct {
	mul *[256][256]byte
	inv *[256]byte
}

// NewTable builds the multiplication and inverse tables by bootstrapping
// from Direct, then returns a ready-to-use Field.
func NewTable() Table {
	var mul [256][256]byte
	var inv [256]byte

	direct := Direct{}
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			mul[a][b] = direct.Mul(byte(a), byte(b))
		}
	}
	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			if mul[a][b] == 1 {
				inv[a] = byte(b)
				break
			}
		}
	}

	return Table{mul: &mul, inv: &inv}
}

func (Table) Zero() byte { return 0 }
func (Table) One() byte  { return 1 }

func (Table) Add(x, y byte) byte { return x ^ y }
func (Table) Sub(x, y byte) byte { return x ^ y }
func (Table) Neg(x byte) byte    { return x }

func (f Table) Mul(x, y byte) byte {
	return f.mul[x][y]
}

func (f Table) Div(x, y byte) (byte, error) {
	if y == 0 {
		return 0, rserr.ErrDivideByZero
	}
	if x == 0 {
		return 0, nil
	}
	return f.mul[x][f.inv[y]], nil
}

func (f Table) Inv(x byte) (byte, error) {
	if x == 0 {
		return 0, rserr.ErrDivideByZero
	}
	return f.inv[x], nil
}

func (f Table) Exp(x byte, y int) byte {
	return expPow(1, f.Mul, x, y)
}
