package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"

	"github.com/momtools/mom/bignum"
	"github.com/momtools/mom/codec"
	"github.com/momtools/mom/grpccodec"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "encode":
		return cmdTranscode(args[1:], out, errOut, true)
	case "decode":
		return cmdTranscode(args[1:], out, errOut, false)
	case "mpi":
		return cmdMPI(args[1:], out, errOut)
	case "int":
		return cmdInt(args[1:], out, errOut)
	case "uvarint":
		return cmdUvarint(args[1:], out, errOut)
	case "multibase":
		return cmdMultibase(args[1:], out, errOut)
	case "codecs":
		return cmdCodecs(out)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "mom: byte-string / bignum codec CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  mom encode --codec <name> [--remote <addr>] [file]")
	fmt.Fprintln(w, "  mom decode --codec <name> [--remote <addr>] [file]")
	fmt.Fprintln(w, "  mom mpi encode <decimal-int>")
	fmt.Fprintln(w, "  mom mpi decode <hex-mpi>")
	fmt.Fprintln(w, "  mom int to-bytes [--block-size <n>] <decimal-int>")
	fmt.Fprintln(w, "  mom int from-bytes <hex-bytes>")
	fmt.Fprintln(w, "  mom uvarint encode <uint>")
	fmt.Fprintln(w, "  mom uvarint decode <hex-bytes>")
	fmt.Fprintln(w, "  mom multibase encode --base <name> [file]")
	fmt.Fprintln(w, "  mom multibase decode [file]")
	fmt.Fprintln(w, "  mom codecs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - encode/decode read the file argument or stdin, and write to stdout")
	fmt.Fprintln(w, "  - encode appends a trailing newline; decode writes raw bytes only")
	fmt.Fprintln(w, "  - --remote sends the transform to a mom-codecd instance instead of")
	fmt.Fprintln(w, "    running it in-process; byte-level results are identical")
	fmt.Fprintln(w, "  - int/mpi/uvarint subcommands print hex for bytes and base 10 for values")
}

func cmdCodecs(out io.Writer) int {
	for _, name := range codec.Names() {
		fmt.Fprintln(out, name)
	}
	return 0
}

func cmdTranscode(args []string, out io.Writer, errOut io.Writer, encode bool) int {
	verb := "decode"
	if encode {
		verb = "encode"
	}
	fs := flag.NewFlagSet(verb, flag.ContinueOnError)
	fs.SetOutput(errOut)
	name := fs.String("codec", "", "codec name (see: mom codecs)")
	remote := fs.String("remote", "", "mom-codecd address; empty runs in-process")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *name == "" {
		fmt.Fprintf(errOut, "usage: mom %s --codec <name> [--remote <addr>] [file]\n", verb)
		return 2
	}

	input, err := readInput(fs.Args())
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if !encode {
		// Shell pipelines almost always append a newline to encoded text.
		input = bytes.TrimRight(input, "\r\n")
	}

	var result []byte
	if *remote != "" {
		result, err = transcodeRemote(*remote, *name, input, encode)
	} else {
		result, err = transcodeLocal(*name, input, encode)
	}
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	if encode {
		fmt.Fprintf(out, "%s\n", result)
	} else {
		_, _ = out.Write(result)
	}
	return 0
}

func transcodeLocal(name string, input []byte, encode bool) ([]byte, error) {
	c, ok := codec.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown codec: %s", name)
	}
	if encode {
		return c.Encode(input), nil
	}
	return c.Decode(input)
}

func transcodeRemote(addr, name string, input []byte, encode bool) ([]byte, error) {
	client, err := grpccodec.Dial(addr, grpccodec.DialOptions{})
	if err != nil {
		return nil, err
	}
	defer client.Close()
	if encode {
		return client.Encode(name, input)
	}
	return client.Decode(name, input)
}

func cmdMPI(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "usage: mom mpi encode <decimal-int> | mom mpi decode <hex-mpi>")
		return 2
	}
	switch args[0] {
	case "encode":
		n, ok := new(big.Int).SetString(args[1], 10)
		if !ok {
			fmt.Fprintln(errOut, "mpi encode: not a base-10 integer")
			return 2
		}
		mpi, err := codec.MPIEncode(n)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		fmt.Fprintf(out, "%s\n", codec.HexEncode(mpi))
		return 0
	case "decode":
		mpi, err := codec.HexDecode([]byte(args[1]))
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
		n, err := codec.MPIDecode(mpi)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		fmt.Fprintf(out, "%s\n", n.Text(10))
		return 0
	default:
		fmt.Fprintf(errOut, "unknown mpi subcommand: %s\n", args[0])
		return 2
	}
}

func cmdInt(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: mom int to-bytes [--block-size <n>] <decimal-int> | mom int from-bytes <hex-bytes>")
		return 2
	}
	switch args[0] {
	case "to-bytes":
		fs := flag.NewFlagSet("int to-bytes", flag.ContinueOnError)
		fs.SetOutput(errOut)
		blockSize := fs.Int("block-size", 0, "left-pad with zero bytes to a multiple of this length")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if fs.NArg() != 1 {
			fmt.Fprintln(errOut, "usage: mom int to-bytes [--block-size <n>] <decimal-int>")
			return 2
		}
		n, ok := new(big.Int).SetString(fs.Arg(0), 10)
		if !ok {
			fmt.Fprintln(errOut, "int to-bytes: not a base-10 integer")
			return 2
		}
		b, err := bignum.ToBytes(n, *blockSize)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		fmt.Fprintf(out, "%s\n", codec.HexEncode(b))
		return 0
	case "from-bytes":
		if len(args) != 2 {
			fmt.Fprintln(errOut, "usage: mom int from-bytes <hex-bytes>")
			return 2
		}
		b, err := codec.HexDecode([]byte(args[1]))
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
		fmt.Fprintf(out, "%s\n", bignum.FromBytes(b).Text(10))
		return 0
	default:
		fmt.Fprintf(errOut, "unknown int subcommand: %s\n", args[0])
		return 2
	}
}

func cmdUvarint(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "usage: mom uvarint encode <uint> | mom uvarint decode <hex-bytes>")
		return 2
	}
	switch args[0] {
	case "encode":
		v, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			fmt.Fprintln(errOut, "uvarint encode: not a 64-bit unsigned integer")
			return 2
		}
		encoded, err := codec.UvarintEncode(v)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		fmt.Fprintf(out, "%s\n", codec.HexEncode(encoded))
		return 0
	case "decode":
		b, err := codec.HexDecode([]byte(args[1]))
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
		v, err := codec.UvarintDecode(b)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		fmt.Fprintf(out, "%d\n", v)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown uvarint subcommand: %s\n", args[0])
		return 2
	}
}

func cmdMultibase(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: mom multibase encode --base <name> [file] | mom multibase decode [file]")
		return 2
	}
	switch args[0] {
	case "encode":
		fs := flag.NewFlagSet("multibase encode", flag.ContinueOnError)
		fs.SetOutput(errOut)
		base := fs.String("base", "base58btc", "multibase encoding name")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		input, err := readInput(fs.Args())
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
		encoded, err := codec.MultibaseEncode(*base, input)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		fmt.Fprintf(out, "%s\n", encoded)
		return 0
	case "decode":
		input, err := readInput(args[1:])
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
		base, decoded, err := codec.MultibaseDecode(bytes.TrimRight(input, "\r\n"))
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		fmt.Fprintf(errOut, "encoding: %s\n", base)
		_, _ = out.Write(decoded)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown multibase subcommand: %s\n", args[0])
		return 2
	}
}

// readInput returns the contents of the single optional file argument,
// or stdin when no argument is given.
func readInput(args []string) ([]byte, error) {
	switch len(args) {
	case 0:
		return io.ReadAll(os.Stdin)
	case 1:
		return os.ReadFile(args[0])
	default:
		return nil, fmt.Errorf("expected at most one file argument")
	}
}
