package codec

import (
	"bytes"
	"encoding/base64"
)

// Base64Encode encodes b with the standard base64 alphabet, padded
// with '=' to a multiple of 4 characters. The output never contains a
// line break.
func Base64Encode(b []byte) []byte {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(out, b)
	return out
}

// Base64Decode decodes standard base64. CR and LF are tolerated
// anywhere in the input, matching lenient decoders that wrap output at
// a fixed column. Any other malformed input is rejected.
func Base64Decode(encoded []byte) ([]byte, error) {
	stripped := encoded
	if bytes.ContainsAny(encoded, "\r\n") {
		stripped = make([]byte, 0, len(encoded))
		for _, c := range encoded {
			if c == '\r' || c == '\n' {
				continue
			}
			stripped = append(stripped, c)
		}
	}
	out := make([]byte, base64.StdEncoding.DecodedLen(len(stripped)))
	n, err := base64.StdEncoding.Decode(out, stripped)
	if err != nil {
		return nil, wrapError(KindInvalidInput, "CODEC-B64-001", "invalid base64 input", err)
	}
	return out[:n], nil
}
