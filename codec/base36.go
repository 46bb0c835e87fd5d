package codec

import base36 "github.com/multiformats/go-base36"

// Base36Encode encodes b in lowercase base36. Leading zero bytes
// render as leading '0' characters.
func Base36Encode(b []byte) []byte {
	return []byte(base36.EncodeToStringLc(b))
}

// Base36Decode is the inverse of Base36Encode; both cases are accepted.
func Base36Decode(encoded []byte) ([]byte, error) {
	// The underlying decoder rejects zero-length input; an empty byte
	// string encodes to an empty string, so decode must accept it back.
	if len(encoded) == 0 {
		return []byte{}, nil
	}
	out, err := base36.DecodeString(string(encoded))
	if err != nil {
		return nil, wrapError(KindInvalidInput, "CODEC-B36-001", "invalid base36 input", err)
	}
	return out, nil
}
