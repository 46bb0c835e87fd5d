package codec

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/momtools/mom/bignum"
)

func TestMPIEncode(t *testing.T) {
	cases := []struct {
		value int64
		want  []byte
	}{
		{0, []byte{0, 0, 0, 1, 0x00}},
		{1, []byte{0, 0, 0, 1, 0x01}},
		{127, []byte{0, 0, 0, 1, 0x7f}},
		// Bit length is a multiple of 8: the minimal magnitude would
		// carry a set high bit, so an extra zero byte is emitted and
		// counted.
		{255, []byte{0, 0, 0, 2, 0x00, 0xff}},
		{256, []byte{0, 0, 0, 2, 0x01, 0x00}},
		{65535, []byte{0, 0, 0, 3, 0x00, 0xff, 0xff}},
	}
	for _, tc := range cases {
		got, err := MPIEncode(big.NewInt(tc.value))
		if err != nil {
			t.Fatalf("MPIEncode(%d): %v", tc.value, err)
		}
		if !bytes.Equal(got, tc.want) {
			t.Errorf("MPIEncode(%d) = %x, want %x", tc.value, got, tc.want)
		}
		if got[4]&0x80 != 0 {
			t.Errorf("MPIEncode(%d): magnitude high bit set", tc.value)
		}
	}
}

func TestMPIRoundTrip(t *testing.T) {
	values := []string{
		"0", "1", "127", "128", "255", "256", "65535", "65536",
		"18446744073709551615",
		"1267650600228229401496703205376", // 2^100
	}
	for _, v := range values {
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			t.Fatalf("bad test value %q", v)
		}
		mpi, err := MPIEncode(n)
		if err != nil {
			t.Fatalf("MPIEncode(%s): %v", v, err)
		}
		got, err := MPIDecode(mpi)
		if err != nil {
			t.Fatalf("MPIDecode(MPIEncode(%s)): %v", v, err)
		}
		if got.Cmp(n) != 0 {
			t.Errorf("round trip of %s = %s", v, got)
		}
	}
}

func TestMPIEncodeNegative(t *testing.T) {
	if _, err := MPIEncode(big.NewInt(-1)); !errors.Is(err, bignum.ErrNegative) {
		t.Fatalf("MPIEncode(-1) error = %v, want ErrNegative", err)
	}
}

func TestMPIDecodeHighBitSet(t *testing.T) {
	// Declared length matches, but the magnitude claims to be negative.
	_, err := MPIDecode([]byte{0, 0, 0, 1, 0xff})
	if !IsKind(err, KindInvalidEncoding) {
		t.Fatalf("error = %v, want InvalidEncoding", err)
	}
}

func TestMPIDecodeMalformed(t *testing.T) {
	cases := [][]byte{
		nil,
		{0, 0, 0},          // shorter than the prefix
		{0, 0, 0, 1},       // declared one byte, none present
		{0, 0, 0, 2, 0x01}, // declared two bytes, one present
		{0, 0, 0, 1, 0x01, 0x02}, // trailing byte beyond declared length
	}
	for _, mpi := range cases {
		_, err := MPIDecode(mpi)
		if !IsKind(err, KindMalformed) {
			t.Errorf("MPIDecode(%x) error = %v, want Malformed", mpi, err)
		}
	}
}
