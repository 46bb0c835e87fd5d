package codec_test

import (
	"testing"

	"github.com/momtools/mom/codec"
	"github.com/momtools/mom/codec/testkit"
)

func TestRegistryConformance(t *testing.T) {
	for _, name := range codec.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			c, ok := codec.ByName(name)
			if !ok {
				t.Fatalf("registry missing %q", name)
			}
			testkit.RunCodecConformance(t, c)
		})
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, ok := codec.ByName("rot13"); ok {
		t.Fatalf("ByName(rot13) should not resolve")
	}
}

func TestNamesSorted(t *testing.T) {
	names := codec.Names()
	if len(names) == 0 {
		t.Fatalf("empty registry")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted: %v", names)
		}
	}
}
