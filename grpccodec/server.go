package grpccodec

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/momtools/mom/codec"
)

// Server serves the codec registry over the codec gRPC services.
type Server struct {
	UnimplementedTranscoderServer
}

func (s *Server) Encode(ctx context.Context, codecName string, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, status.Error(codes.NotFound, "unknown codec: "+codecName)
	}
	return wrapperspb.Bytes(c.Encode(in.GetValue())), nil
}

func (s *Server) Decode(ctx context.Context, codecName string, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, status.Error(codes.NotFound, "unknown codec: "+codecName)
	}
	out, err := c.Decode(in.GetValue())
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bytes(out), nil
}

// mapErr translates the codec error taxonomy to gRPC status codes.
// Structural and framing errors are the caller's fault; a violated
// format invariant is surfaced as DataLoss so clients can tell the two
// apart across the wire.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case codec.IsKind(err, codec.KindInvalidInput), codec.IsKind(err, codec.KindMalformed):
		return status.Error(codes.InvalidArgument, statusMessage(err))
	case codec.IsKind(err, codec.KindInvalidEncoding):
		return status.Error(codes.DataLoss, statusMessage(err))
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// statusMessage carries the stable RuleID across the wire so mapRPC can
// rebuild a structured error on the client side.
func statusMessage(err error) string {
	if id := codec.RuleID(err); id != "" {
		return id + ": " + err.Error()
	}
	return err.Error()
}
