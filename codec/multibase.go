package codec

import "github.com/multiformats/go-multibase"

// MultibaseEncode encodes b in the named multibase encoding (e.g.
// "base58btc", "base32", "base16") and prefixes the result with the
// encoding's self-describing code character. Unknown names are
// rejected.
func MultibaseEncode(base string, b []byte) ([]byte, error) {
	enc, err := multibase.EncoderByName(base)
	if err != nil {
		return nil, wrapError(KindInvalidInput, "CODEC-MB-001", "unknown multibase encoding", err)
	}
	return []byte(enc.Encode(b)), nil
}

// MultibaseDecode decodes a multibase string, selecting the encoding
// from its prefix character. It returns the canonical name of that
// encoding alongside the decoded bytes.
func MultibaseDecode(encoded []byte) (string, []byte, error) {
	enc, out, err := multibase.Decode(string(encoded))
	if err != nil {
		return "", nil, wrapError(KindInvalidInput, "CODEC-MB-002", "invalid multibase input", err)
	}
	// Decode only succeeds for encodings the library knows, so the
	// reverse lookup cannot miss.
	return multibase.EncodingToStr[enc], out, nil
}
