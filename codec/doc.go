// Package codec implements deterministic, bit-exact conversions between
// opaque byte strings and derived textual or binary encodings:
// hexadecimal, nibble-level binary, base64, base32, base36, base58,
// multibase, padding-preserving decimal, unsigned varints, and the
// OpenSSL-style MPI bignum wire format.
//
// Every function is a one-shot pure transform over a fully materialized
// input. There is no shared state and no I/O; all functions are safe
// for concurrent use. Decoders fail immediately with a structured
// *Error (see Kind) on malformed input; encoders have no error paths
// for byte-string input.
//
// None of the codecs operate on decoded text. Inputs and outputs are
// raw 8-bit byte sequences throughout, even when the encoded form
// happens to be ASCII.
package codec
