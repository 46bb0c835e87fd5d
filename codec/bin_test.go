package codec

import (
	"bytes"
	"testing"
)

func TestBinEncode(t *testing.T) {
	cases := []struct {
		input []byte
		want  string
	}{
		{nil, ""},
		{[]byte{0x00}, "00000000"},
		{[]byte{0xff}, "11111111"},
		{[]byte{0x00, 0xff}, "0000000011111111"},
		{[]byte{0x5a}, "01011010"},
	}
	for _, tc := range cases {
		if got := BinEncode(tc.input); string(got) != tc.want {
			t.Errorf("BinEncode(%x) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// The codec works per byte through the hex tables, so runs of zero
// bytes survive the round trip intact.
func TestBinZeroBytesPreserved(t *testing.T) {
	input := []byte{0x00, 0x00, 0x00, 0x05}
	got, err := BinDecode(BinEncode(input))
	if err != nil {
		t.Fatalf("BinDecode: %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Fatalf("round trip = %x, want %x", got, input)
	}
}

func TestBinDecodeInvalid(t *testing.T) {
	for _, encoded := range []string{"010", "00000", "0002", "abcd", "1111 000"} {
		_, err := BinDecode([]byte(encoded))
		if !IsKind(err, KindInvalidInput) {
			t.Errorf("BinDecode(%q) error = %v, want InvalidInput", encoded, err)
		}
	}
}
