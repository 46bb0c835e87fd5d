package codec

import "sort"

// Codec pairs a byte⇄byte encoder with its inverse under a stable
// name. Encode never fails for byte-string input; Decode fails with a
// structured *Error on malformed input.
type Codec struct {
	Name   string
	Encode func([]byte) []byte
	Decode func([]byte) ([]byte, error)
}

// The registry covers the byte⇄byte codecs only. Multibase needs an
// encoding argument and uvarint is not byte⇄byte, so both stay out.
var codecs = map[string]Codec{
	"hex":     {Name: "hex", Encode: HexEncode, Decode: HexDecode},
	"bin":     {Name: "bin", Encode: BinEncode, Decode: BinDecode},
	"base32":  {Name: "base32", Encode: Base32Encode, Decode: Base32Decode},
	"base36":  {Name: "base36", Encode: Base36Encode, Decode: Base36Decode},
	"base58":  {Name: "base58", Encode: Base58Encode, Decode: Base58Decode},
	"base64":  {Name: "base64", Encode: Base64Encode, Decode: Base64Decode},
	"decimal": {Name: "decimal", Encode: DecimalEncode, Decode: DecimalDecode},
}

// ByName returns the named codec from the registry.
func ByName(name string) (Codec, bool) {
	c, ok := codecs[name]
	return c, ok
}

// Names returns the registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
