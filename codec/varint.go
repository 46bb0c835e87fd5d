package codec

import (
	"math"

	"github.com/multiformats/go-varint"
)

// UvarintEncode returns the minimal unsigned varint encoding of v.
// Values above 63 bits are rejected: the varint format used here caps
// payloads at 9 bytes, and anything larger would not decode back.
func UvarintEncode(v uint64) ([]byte, error) {
	if v > math.MaxInt64 {
		return nil, wrapError(KindInvalidInput, "CODEC-UV-003", "uvarint value exceeds 63 bits", varint.ErrOverflow)
	}
	return varint.ToUvarint(v), nil
}

// UvarintDecode parses a single unsigned varint occupying the whole of
// b. Non-minimal encodings, overflow past 63 bits, truncated input,
// and trailing bytes are all rejected.
func UvarintDecode(b []byte) (uint64, error) {
	v, n, err := varint.FromUvarint(b)
	if err != nil {
		return 0, wrapError(KindInvalidInput, "CODEC-UV-001", "invalid uvarint input", err)
	}
	if n != len(b) {
		return 0, newError(KindInvalidInput, "CODEC-UV-002", "trailing bytes after uvarint")
	}
	return v, nil
}
