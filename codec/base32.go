package codec

import base32 "github.com/multiformats/go-base32"

// Lowercase RFC 4648 alphabet, unpadded. NewEncodingCI makes decoding
// case-insensitive, like the hex codec.
var base32Lower = base32.NewEncodingCI("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// Base32Encode encodes b with the lowercase RFC 4648 alphabet, without
// padding.
func Base32Encode(b []byte) []byte {
	return []byte(base32Lower.EncodeToString(b))
}

// Base32Decode is the inverse of Base32Encode; decoding is
// case-insensitive.
func Base32Decode(encoded []byte) ([]byte, error) {
	out, err := base32Lower.DecodeString(string(encoded))
	if err != nil {
		return nil, wrapError(KindInvalidInput, "CODEC-B32-001", "invalid base32 input", err)
	}
	return out, nil
}
