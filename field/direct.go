package field

import "github.com/rizkytaufiq/rscore/rserr"

// Direct computes every operation from scratch with no precomputed
// tables. Multiplication uses Russian-peasant multiplication: for each of
// the 8 bits of b, conditionally XOR a into the accumulator when the low
// bit of b is set, then double a (shift left, XOR the modulus in on
// carry) and shift b right.
//
// Direct has no setup cost and a tiny memory footprint, making it the
// right choice for one-off operations or tests that want to stay clear
// of any table-construction bugs.
type Direct struct{}

// NewDirect returns a Field backed by Direct.
func NewDirect() Direct { return Direct{} }

func (Direct) Zero() byte { return 0 }
func (Direct) One() byte  { return 1 }

func (Direct) Add(x, y byte) byte { return x ^ y }
func (Direct) Sub(x, y byte) byte { return x ^ y }
func (Direct) Neg(x byte) byte    { return x }

func (Direct) Mul(a, b byte) byte {
	var result byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			result ^= a
		}
		hiBitSet := a & 0x80
		a <<= 1
		if hiBitSet != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return result
}

func (f Direct) Div(x, y byte) (byte, error) {
	if y == 0 {
		return 0, rserr.ErrDivideByZero
	}
	if x == 0 {
		return 0, nil
	}
	inv, err := f.Inv(y)
	if err != nil {
		return 0, err
	}
	return f.Mul(x, inv), nil
}

func (f Direct) Inv(x byte) (byte, error) {
	if x == 0 {
		return 0, rserr.ErrDivideByZero
	}
	// Every nonzero element has order dividing 255, so x^254 = x^-1.
	return expPow(1, f.Mul, x, 254), nil
}

func (f Direct) Exp(x byte, y int) byte {
	return expPow(1, f.Mul, x, y)
}
