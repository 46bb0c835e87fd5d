// Package testkit provides a reusable conformance suite for byte⇄byte
// codecs. Every registry codec and every remote transport that proxies
// one must pass it.
package testkit

import (
	"bytes"
	"testing"

	"github.com/momtools/mom/codec"
)

// Corpus returns the byte strings every codec must round-trip:
// empty input, all-zero runs of several lengths, single-byte
// boundaries, leading/trailing zero mixes, and a dense 256-byte ramp.
func Corpus() [][]byte {
	ramp := make([]byte, 256)
	for i := range ramp {
		ramp[i] = byte(i)
	}
	return [][]byte{
		{},
		{0x00},
		{0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00},
		{0x01},
		{0xff},
		{0x00, 0xff},
		{0x00, 0x00, 0x05},
		{0x01, 0x00},
		{0x7f, 0x80, 0x00},
		[]byte("hello, mom codecs"),
		ramp,
	}
}

// RunCodecConformance runs the round-trip suite against c.
// The returned bytes MUST equal the input byte for byte; codecs that
// lose leading zeros do not belong in the registry.
func RunCodecConformance(t *testing.T, c codec.Codec) {
	t.Helper()

	t.Run("RoundTrip", func(t *testing.T) {
		for _, want := range Corpus() {
			encoded := c.Encode(want)
			got, err := c.Decode(encoded)
			if err != nil {
				t.Fatalf("%s: Decode(%q) failed: %v", c.Name, encoded, err)
			}
			if !bytes.Equal(got, want) {
				t.Fatalf("%s: round-trip mismatch: input %x, encoded %q, got %x", c.Name, want, encoded, got)
			}
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		encoded := c.Encode(nil)
		got, err := c.Decode(encoded)
		if err != nil {
			t.Fatalf("%s: Decode of encoded empty input failed: %v", c.Name, err)
		}
		if len(got) != 0 {
			t.Fatalf("%s: empty input did not round-trip: got %x", c.Name, got)
		}
	})

	t.Run("DeterministicEncode", func(t *testing.T) {
		for _, in := range Corpus() {
			first := c.Encode(in)
			second := c.Encode(in)
			if !bytes.Equal(first, second) {
				t.Fatalf("%s: Encode not deterministic for %x", c.Name, in)
			}
		}
	})
}
