package codec

import (
	"math/big"

	"github.com/momtools/mom/bignum"
)

// DecimalEncode renders b as ASCII base-10 digits with the leading
// zero-byte run preserved: the result is one '0' character per leading
// zero byte, followed by the base-10 rendering of the remaining
// magnitude (omitted entirely when the magnitude is zero).
//
// A plain integer rendering would collapse "\x00\x05" and
// "\x00\x00\x05" to the same digit string; the explicit zero run makes
// the codec byte-count preserving.
func DecimalEncode(b []byte) []byte {
	padding := 0
	for padding < len(b) && b[padding] == 0 {
		padding++
	}
	out := make([]byte, padding, padding+2*len(b))
	for i := range out {
		out[i] = '0'
	}
	n := bignum.FromBytes(b)
	if n.Sign() != 0 {
		out = append(out, n.Text(10)...)
	}
	return out
}

// DecimalDecode is the inverse of DecimalEncode: each leading '0'
// becomes one zero byte, and the remaining digits are parsed as a
// base-10 magnitude. When that magnitude is zero the result is exactly
// the zero-byte run, with no trailing byte for the value itself.
func DecimalDecode(encoded []byte) ([]byte, error) {
	padding := 0
	for padding < len(encoded) && encoded[padding] == '0' {
		padding++
	}
	out := make([]byte, padding)
	rest := encoded[padding:]
	if len(rest) == 0 {
		return out, nil
	}
	n, ok := new(big.Int).SetString(string(rest), 10)
	if !ok || n.Sign() < 0 {
		return nil, newError(KindInvalidInput, "CODEC-DEC-001", "invalid decimal input")
	}
	if n.Sign() == 0 {
		return out, nil
	}
	magnitude, err := bignum.ToBytes(n, 0)
	if err != nil {
		return nil, err
	}
	return append(out, magnitude...), nil
}
