// Package bignum converts between arbitrary-precision non-negative
// integers and their minimal big-endian byte-string representation.
//
// This is the base of every numeric codec in this repository: the
// decimal codec and the MPI framer both fold through these two
// conversions. Leading zero bytes are non-semantic here; callers that
// need them preserved (the decimal codec does) must count and restore
// them themselves.
package bignum

import (
	"errors"
	"math/big"
)

// ErrNegative is returned by ToBytes for negative inputs. The byte
// representation used here is an unsigned magnitude; there is no sign
// to encode.
var ErrNegative = errors.New("bignum: negative value has no byte representation")

// ToBytes returns the minimal big-endian byte encoding of n.
//
// Zero encodes as a single zero byte, not as an empty slice. If
// blockSize > 0 the result is left-padded with zero bytes until its
// length is a multiple of blockSize.
func ToBytes(n *big.Int, blockSize int) ([]byte, error) {
	if n.Sign() < 0 {
		return nil, ErrNegative
	}
	b := n.Bytes()
	if len(b) == 0 {
		b = []byte{0}
	}
	if blockSize > 0 && len(b)%blockSize != 0 {
		padded := make([]byte, len(b)+blockSize-len(b)%blockSize)
		copy(padded[len(padded)-len(b):], b)
		b = padded
	}
	return b, nil
}

// FromBytes interprets b as a big-endian unsigned magnitude.
// Empty input yields zero. Every byte string is valid input.
func FromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// ByteCount returns the number of bytes in the minimal encoding of n,
// which is 0 for value 0 (ToBytes forces a single zero byte; this
// helper deliberately does not).
func ByteCount(n *big.Int) int {
	return (n.BitLen() + 7) / 8
}
