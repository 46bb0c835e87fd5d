// Command codec_vector_gen regenerates the golden vector files under
// testdata/vectors from the current codec registry. Run it only after
// a deliberate wire-format change, and review the diff.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/momtools/mom/codec"
)

// The vector corpus is fixed so files stay diffable across runs:
// empty input, the zero byte, leading-zero and trailing-zero pairs, a
// zero run, and a short ASCII string.
var inputs = []string{
	"",
	"00",
	"00ff",
	"0100",
	"000005",
	"68656c6c6f",
}

func main() {
	outDir := flag.String("out", filepath.Join("testdata", "vectors"), "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, name := range codec.Names() {
		c, _ := codec.ByName(name)
		var b strings.Builder
		fmt.Fprintf(&b, "# %s conformance vectors: input-hex<TAB>encoded\n", name)
		for _, inputHex := range inputs {
			input, err := codec.HexDecode([]byte(inputHex))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Fprintf(&b, "%s\t%s\n", inputHex, c.Encode(input))
		}
		path := filepath.Join(*outDir, name+".txt")
		if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	}
}
