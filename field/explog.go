package field

import "github.com/rizkytaufiq/rscore/rserr"

// ExpLog precomputes a log[256] and a doubled exp[512] table from the
// generator 0x03 so multiplication, division, and inversion become a
// table-indexed add/subtract on the exponents instead of polynomial
// arithmetic. The exp table is doubled (512 entries) so that
// log[x]+log[y], which can run up to 508, never needs an explicit modulo.
type ExpLog struct {
	log *[256]byte
	exp *[512]byte
}

// NewExpLog builds the log/exp tables by bootstrapping from Direct, then
// returns a ready-to-use Field.
func NewExpLog() ExpLog {
	var log [256]byte
	var exp [512]byte

	direct := Direct{}
	x := byte(1)
	for i := 0; i < 255; i++ {
		exp[i] = x
		exp[i+255] = x
		log[x] = byte(i)
		x = direct.Mul(x, Generator)
	}
	log[0] = 0 // unused; Inv/Div reject 0 explicitly before consulting log.

	return ExpLog{log: &log, exp: &exp}
}

func (ExpLog) Zero() byte { return 0 }
func (ExpLog) One() byte  { return 1 }

func (ExpLog) Add(x, y byte) byte { return x ^ y }
func (ExpLog) Sub(x, y byte) byte { return x ^ y }
func (ExpLog) Neg(x byte) byte    { return x }

func (f ExpLog) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

func (f ExpLog) Div(x, y byte) (byte, error) {
	if y == 0 {
		return 0, rserr.ErrDivideByZero
	}
	if x == 0 {
		return 0, nil
	}
	diff := int(f.log[x]) - int(f.log[y]) + 255
	return f.exp[diff], nil
}

func (f ExpLog) Inv(x byte) (byte, error) {
	if x == 0 {
		return 0, rserr.ErrDivideByZero
	}
	return f.exp[255-int(f.log[x])], nil
}

func (f ExpLog) Exp(x byte, y int) byte {
	return expPow(1, f.Mul, x, y)
}
