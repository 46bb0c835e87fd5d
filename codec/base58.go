package codec

import "github.com/mr-tron/base58"

// Base58Encode encodes b with the Bitcoin base58 alphabet. Leading
// zero bytes render as leading '1' characters, so the codec is
// byte-count preserving.
func Base58Encode(b []byte) []byte {
	return []byte(base58.Encode(b))
}

// Base58Decode is the inverse of Base58Encode. Characters outside the
// Bitcoin alphabet are rejected.
func Base58Decode(encoded []byte) ([]byte, error) {
	// The underlying decoder rejects zero-length input; an empty byte
	// string encodes to an empty string, so decode must accept it back.
	if len(encoded) == 0 {
		return []byte{}, nil
	}
	out, err := base58.Decode(string(encoded))
	if err != nil {
		return nil, wrapError(KindInvalidInput, "CODEC-B58-001", "invalid base58 input", err)
	}
	return out, nil
}
