package rs

import (
	"bytes"
	"testing"

	"github.com/rizkytaufiq/rscore/field"
)

func mustCodec(t *testing.T, enc Encoding, f field.Field, v Variant) *Codec {
	t.Helper()
	c, err := NewCodec(enc, f, v)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return c
}

func TestParseEncoding(t *testing.T) {
	cases := []struct {
		in      string
		want    Encoding
		wantErr bool
	}{
		{"rs=9.4", Encoding{9, 4}, false},
		{"rs=4.2", Encoding{4, 2}, false},
		{"rs=0.5", Encoding{0, 5}, false},
		{"9.4", Encoding{}, true},
		{"rs=abc.4", Encoding{}, true},
		{"rs=200.100", Encoding{}, true}, // sum > 255
		{"rs=255.0", Encoding{255, 0}, false},
	}
	for _, tc := range cases {
		got, err := ParseEncoding(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseEncoding(%q) error=%v, wantErr=%v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseEncoding(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	enc := Encoding{K: 9, M: 4}
	c := mustCodec(t, enc, field.NewDirect(), Lagrange)
	coded := c.Encode(nil)
	if coded.Length != 0 || len(coded.Codes) != 0 || len(coded.Valid) != 0 {
		t.Fatalf("Encode(nil) = %+v, want empty stream", coded)
	}
}

func TestEncodeSmallLagrangeDirect(t *testing.T) {
	enc := Encoding{K: 4, M: 2}
	c := mustCodec(t, enc, field.NewDirect(), Lagrange)
	coded := c.Encode([]byte("DEADBEEF"))

	want := [][]byte{
		{0x44, 0x45, 0x41, 0x44, 0x02, 0x1B},
		{0x42, 0x45, 0x45, 0x46, 0x38, 0x27},
	}
	if coded.Length != 8 {
		t.Fatalf("Length = %d, want 8", coded.Length)
	}
	if len(coded.Codes) != len(want) {
		t.Fatalf("got %d stripes, want %d", len(coded.Codes), len(want))
	}
	for i, stripe := range coded.Codes {
		if !bytes.Equal(stripe, want[i]) {
			t.Fatalf("stripe %d = % x, want % x", i, stripe, want[i])
		}
	}
	if len(coded.Valid) != 0 {
		t.Fatalf("Valid = %v, want empty (all valid)", coded.Valid)
	}
}

func scenario2Stream() CodedStream {
	return CodedStream{
		Length:   8,
		Encoding: Encoding{K: 4, M: 2},
		Codes: [][]byte{
			{0x44, 0x45, 0x41, 0x44, 0x02, 0x1B},
			{0x42, 0x45, 0x45, 0x46, 0x38, 0x27},
		},
	}
}

func TestDecodeNoErasures(t *testing.T) {
	enc := Encoding{K: 4, M: 2}
	c := mustCodec(t, enc, field.NewDirect(), Lagrange)
	coded := scenario2Stream()
	coded.Valid = []bool{true, true, true, true, true, true}

	got, err := c.Decode(coded)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "DEADBEEF" {
		t.Fatalf("Decode = %q, want DEADBEEF", got)
	}
}

func TestDecodeCodeErasure(t *testing.T) {
	enc := Encoding{K: 4, M: 2}
	c := mustCodec(t, enc, field.NewDirect(), Lagrange)
	coded := scenario2Stream()
	coded.Codes = [][]byte{
		{0x44, 0x45, 0x41, 0x44, 0, 0},
		{0x42, 0x45, 0x45, 0x46, 0, 0},
	}
	coded.Valid = []bool{true, true, true, true, false, false}

	got, err := c.Decode(coded)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "DEADBEEF" {
		t.Fatalf("Decode = %q, want DEADBEEF", got)
	}
}

func TestDecodeDataErasure(t *testing.T) {
	enc := Encoding{K: 4, M: 2}
	c := mustCodec(t, enc, field.NewDirect(), Lagrange)
	coded := CodedStream{
		Length:   8,
		Encoding: enc,
		Codes: [][]byte{
			{0x00, 0x45, 0x00, 0x44, 0x02, 0x1B},
			{0x00, 0x45, 0x00, 0x46, 0x38, 0x27},
		},
		Valid: []bool{false, true, false, true, true, true},
	}
	got, err := c.Decode(coded)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "DEADBEEF" {
		t.Fatalf("Decode = %q, want DEADBEEF", got)
	}
}

func TestTooManyErasures(t *testing.T) {
	enc := Encoding{K: 4, M: 2}
	c := mustCodec(t, enc, field.NewDirect(), Lagrange)
	coded := scenario2Stream()
	coded.Valid = []bool{false, true, false, true, false, true}

	if _, err := c.Decode(coded); err == nil {
		t.Fatal("expected TooManyErasures")
	}
}

func TestShortValidMaskFailsEvenIfPrefixTrue(t *testing.T) {
	enc := Encoding{K: 4, M: 2}
	c := mustCodec(t, enc, field.NewDirect(), Lagrange)
	coded := scenario2Stream()
	// Shorter than width: must not be mistaken for "all valid" or for a
	// valid identity-prefix fast path.
	coded.Valid = []bool{true, true, true}

	if _, err := c.Decode(coded); err == nil {
		t.Fatal("expected an error for a too-short valid mask")
	}
}

func roundTrip(t *testing.T, variant Variant, f field.Field, enc Encoding, data []byte, erase []int) {
	t.Helper()
	c := mustCodec(t, enc, f, variant)
	coded := c.Encode(data)

	valid := make([]bool, enc.Width())
	for i := range valid {
		valid[i] = true
	}
	for _, i := range erase {
		valid[i] = false
	}
	coded.Valid = valid

	got, err := c.Decode(coded)
	if err != nil {
		t.Fatalf("variant %v: decode: %v", variant, err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("variant %v: round trip mismatch: got % x want % x", variant, got, data)
	}
}

func TestRoundTripAllVariantsAllFields(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	enc := Encoding{K: 5, M: 3}
	fields := map[string]field.Field{
		"Direct": field.NewDirect(),
		"ExpLog": field.NewExpLog(),
		"Table":  field.NewTable(),
	}
	variants := map[string]Variant{"Lagrange": Lagrange, "Vandermonde": Vandermonde, "Cauchy": Cauchy}

	for fname, f := range fields {
		for vname, v := range variants {
			t.Run(fname+"/"+vname, func(t *testing.T) {
				roundTrip(t, v, f, enc, data, nil)
				roundTrip(t, v, f, enc, data, []int{0})        // data erasure
				roundTrip(t, v, f, enc, data, []int{5, 6, 7})  // all code erased (m=3)
				roundTrip(t, v, f, enc, data, []int{1, 6, 7})  // mixed erasure
			})
		}
	}
}

func TestErasureBeyondMFails(t *testing.T) {
	enc := Encoding{K: 5, M: 3}
	f := field.NewTable()
	for _, v := range []Variant{Lagrange, Vandermonde, Cauchy} {
		c := mustCodec(t, enc, f, v)
		coded := c.Encode([]byte("some data to protect"))
		valid := make([]bool, enc.Width())
		for i := range valid {
			valid[i] = true
		}
		// erase m+1 = 4 columns
		valid[0], valid[1], valid[2], valid[3] = false, false, false, false
		coded.Valid = valid
		if _, err := c.Decode(coded); err == nil {
			t.Fatalf("variant %v: expected TooManyErasures with m+1 erasures", v)
		}
	}
}

func TestLagrangeAndVandermondeAgree(t *testing.T) {
	enc := Encoding{K: 6, M: 4}
	f := field.NewTable()
	lag := mustCodec(t, enc, f, Lagrange)
	van := mustCodec(t, enc, f, Vandermonde)

	data := []byte("cross-variant agreement check, sixteen+ bytes")
	a := lag.Encode(data)
	b := van.Encode(data)
	if len(a.Codes) != len(b.Codes) {
		t.Fatalf("stripe count differs: %d vs %d", len(a.Codes), len(b.Codes))
	}
	for i := range a.Codes {
		if !bytes.Equal(a.Codes[i], b.Codes[i]) {
			t.Fatalf("stripe %d differs: % x vs % x", i, a.Codes[i], b.Codes[i])
		}
	}
}

func TestEncodingMismatchRejected(t *testing.T) {
	f := field.NewTable()
	a := mustCodec(t, Encoding{K: 4, M: 2}, f, Lagrange)
	b := mustCodec(t, Encoding{K: 5, M: 2}, f, Lagrange)
	coded := b.Encode([]byte("12345"))
	if _, err := a.Decode(coded); err == nil {
		t.Fatal("expected encoding-mismatch error")
	}
}
