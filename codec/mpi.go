package codec

import (
	"encoding/binary"
	"math/big"

	"github.com/momtools/mom/bignum"
)

// MPIEncode converts a non-negative integer into an OpenSSL-format MPI
// bignum byte string: a 4-byte big-endian count of magnitude bytes
// followed by the magnitude itself.
//
// The format reserves the magnitude's high bit to signal sign. When
// the bit length of n is an exact multiple of 8 the minimal magnitude
// would have its top bit set, so one extra zero byte is prepended (and
// counted in the length prefix). The emitted magnitude's top bit is
// therefore always 0; encoding cannot fail for n >= 0.
func MPIEncode(n *big.Int) ([]byte, error) {
	if n.Sign() < 0 {
		return nil, bignum.ErrNegative
	}
	magnitude := n.Bytes()
	extra := 0
	if n.BitLen()%8 == 0 {
		extra = 1
	}
	out := make([]byte, 4+extra+len(magnitude))
	binary.BigEndian.PutUint32(out, uint32(len(magnitude)+extra))
	copy(out[4+extra:], magnitude)
	return out, nil
}

// MPIDecode converts an OpenSSL-format MPI bignum byte string into a
// non-negative integer.
//
// Beyond the baseline format, the length prefix is cross-checked
// against the bytes actually present; silently truncating or
// over-reading would be a latent correctness risk.
func MPIDecode(mpi []byte) (*big.Int, error) {
	if len(mpi) < 5 {
		return nil, newError(KindMalformed, "CODEC-MPI-001", "MPI shorter than prefix plus one magnitude byte")
	}
	declared := binary.BigEndian.Uint32(mpi)
	if uint64(declared) != uint64(len(mpi)-4) {
		return nil, newError(KindMalformed, "CODEC-MPI-002", "MPI length prefix does not match available bytes")
	}
	// A set high bit would make the value negative under the format's
	// sign convention; this library only carries non-negative values.
	if mpi[4]&0x80 != 0 {
		return nil, newError(KindInvalidEncoding, "CODEC-MPI-003", "MPI magnitude has its high bit set")
	}
	return bignum.FromBytes(mpi[4:]), nil
}
