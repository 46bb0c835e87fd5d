package codec

import (
	"bytes"
	"testing"
)

func TestBase58Literals(t *testing.T) {
	cases := []struct {
		input []byte
		want  string
	}{
		{[]byte{0x00}, "1"},
		{[]byte{0x00, 0xff}, "15Q"},
		{[]byte("hello"), "Cn8eVZg"},
	}
	for _, tc := range cases {
		if got := Base58Encode(tc.input); string(got) != tc.want {
			t.Errorf("Base58Encode(%x) = %q, want %q", tc.input, got, tc.want)
		}
	}
	if _, err := Base58Decode([]byte("0OIl")); !IsKind(err, KindInvalidInput) {
		t.Errorf("Base58Decode of excluded characters should fail with InvalidInput")
	}
}

func TestBase32Literals(t *testing.T) {
	got := Base32Encode([]byte("hello"))
	if string(got) != "nbswy3dp" {
		t.Fatalf("Base32Encode(hello) = %q, want nbswy3dp", got)
	}
	// Decode is case-insensitive, like the hex codec.
	decoded, err := Base32Decode([]byte("NBSWY3DP"))
	if err != nil {
		t.Fatalf("Base32Decode: %v", err)
	}
	if string(decoded) != "hello" {
		t.Fatalf("Base32Decode = %q, want hello", decoded)
	}
	if _, err := Base32Decode([]byte("01!")); !IsKind(err, KindInvalidInput) {
		t.Errorf("Base32Decode of invalid characters should fail with InvalidInput")
	}
}

func TestBase36Literals(t *testing.T) {
	cases := []struct {
		input []byte
		want  string
	}{
		{[]byte{0x00}, "0"},
		{[]byte{0x00, 0xff}, "073"},
		{[]byte{0x01, 0x00}, "74"},
	}
	for _, tc := range cases {
		if got := Base36Encode(tc.input); string(got) != tc.want {
			t.Errorf("Base36Encode(%x) = %q, want %q", tc.input, got, tc.want)
		}
	}
	if _, err := Base36Decode([]byte("_")); !IsKind(err, KindInvalidInput) {
		t.Errorf("Base36Decode of invalid characters should fail with InvalidInput")
	}
}

func TestBaseNLeadingZerosPreserved(t *testing.T) {
	input := []byte{0x00, 0x00, 0x00, 0x2a}
	for _, name := range []string{"base32", "base36", "base58"} {
		c, ok := ByName(name)
		if !ok {
			t.Fatalf("registry missing %q", name)
		}
		got, err := c.Decode(c.Encode(input))
		if err != nil {
			t.Fatalf("%s round trip: %v", name, err)
		}
		if !bytes.Equal(got, input) {
			t.Errorf("%s round trip = %x, want %x", name, got, input)
		}
	}
}
