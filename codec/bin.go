package codec

// Nibble lookup tables shared by BinEncode/BinDecode. Constant data,
// initialized once at load.
var hexToBin = map[byte]string{
	'0': "0000", '1': "0001", '2': "0010", '3': "0011",
	'4': "0100", '5': "0101", '6': "0110", '7': "0111",
	'8': "1000", '9': "1001",
	'a': "1010", 'A': "1010",
	'b': "1011", 'B': "1011",
	'c': "1100", 'C': "1100",
	'd': "1101", 'D': "1101",
	'e': "1110", 'E': "1110",
	'f': "1111", 'F': "1111",
}

var binToHex = map[string]byte{
	"0000": '0', "0001": '1', "0010": '2', "0011": '3',
	"0100": '4', "0101": '5', "0110": '6', "0111": '7',
	"1000": '8', "1001": '9', "1010": 'a', "1011": 'b',
	"1100": 'c', "1101": 'd', "1110": 'e', "1111": 'f',
}

// BinEncode renders b as ASCII '0'/'1' characters, 8 per input byte,
// by hex-encoding and expanding each hex digit to its 4-bit form.
//
// Because this routes through the hex codec and operates per byte, it
// preserves all zero bytes; an integer-based implementation would not.
func BinEncode(b []byte) []byte {
	out := make([]byte, 0, 8*len(b))
	for _, c := range HexEncode(b) {
		out = append(out, hexToBin[c]...)
	}
	return out
}

// BinDecode groups encoded into 4-character chunks, maps each chunk
// back to a hex digit, and hex-decodes the result. Input length must
// be a multiple of 4 and every chunk must be a valid nibble.
func BinDecode(encoded []byte) ([]byte, error) {
	if len(encoded)%4 != 0 {
		return nil, newError(KindInvalidInput, "CODEC-BIN-001", "binary input length must be a multiple of 4")
	}
	hexDigits := make([]byte, 0, len(encoded)/4)
	for i := 0; i < len(encoded); i += 4 {
		digit, ok := binToHex[string(encoded[i:i+4])]
		if !ok {
			return nil, newError(KindInvalidInput, "CODEC-BIN-002", "invalid 4-bit group in binary input")
		}
		hexDigits = append(hexDigits, digit)
	}
	return HexDecode(hexDigits)
}
