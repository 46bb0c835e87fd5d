package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"github.com/momtools/mom/codec"
	"github.com/momtools/mom/grpccodec"
)

func main() {
	fs := flag.NewFlagSet("mom-codecd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7707", "listen address")
	listCodecs := fs.Bool("list-codecs", false, "List served codecs and exit")

	_ = fs.Parse(os.Args[1:])
	if *listCodecs {
		for _, name := range codec.Names() {
			fmt.Fprintln(os.Stdout, name)
		}
		return
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	grpccodec.RegisterTranscoderServer(s, &grpccodec.Server{})

	fmt.Fprintf(os.Stderr, "mom-codecd listening on %s (%d codecs)\n", lis.Addr().String(), len(codec.Names()))
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
