package codec

import "encoding/hex"

// HexEncode renders each input byte as two lowercase hexadecimal
// characters, most significant nibble first. Output length is exactly
// 2*len(b).
func HexEncode(b []byte) []byte {
	out := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(out, b)
	return out
}

// HexDecode is the exact inverse of HexEncode. Input must have even
// length and contain only hex digits; either case is accepted.
func HexDecode(encoded []byte) ([]byte, error) {
	out := make([]byte, hex.DecodedLen(len(encoded)))
	n, err := hex.Decode(out, encoded)
	if err != nil {
		return nil, wrapError(KindInvalidInput, "CODEC-HEX-001", "invalid hex input", err)
	}
	return out[:n], nil
}
