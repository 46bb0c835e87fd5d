// Package grpccodec exposes the codec registry over gRPC so non-Go
// callers can reuse the exact byte-level behavior of this library.
package grpccodec

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/momtools/mom/codec"
)

// TranscoderServer is the server API shared by every codec service.
//
// We intentionally use protobuf well-known wrapper types so this package
// does not require a protoc/codegen toolchain. Each registered codec is
// published as its own service (mom.codec.v1.Hex, mom.codec.v1.Base64,
// ...) with identical Encode/Decode methods; the codec name reaches the
// implementation through the service descriptor, not the payload.
//
// Proto definition: codec.proto.
type TranscoderServer interface {
	Encode(ctx context.Context, codecName string, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
	Decode(ctx context.Context, codecName string, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
}

// UnimplementedTranscoderServer can be embedded to have forward compatible
// implementations.
type UnimplementedTranscoderServer struct{}

func (UnimplementedTranscoderServer) Encode(context.Context, string, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Encode not implemented")
}
func (UnimplementedTranscoderServer) Decode(context.Context, string, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Decode not implemented")
}

// RegisterTranscoderServer registers one codec service per registry
// entry on a gRPC server.
func RegisterTranscoderServer(s grpc.ServiceRegistrar, srv TranscoderServer) {
	for _, name := range codec.Names() {
		s.RegisterService(serviceDesc(name), srv)
	}
}

func serviceName(codecName string) string {
	return "mom.codec.v1." + exportName(codecName)
}

// exportName turns a registry name into a service identifier ("hex" ->
// "Hex"). Registry names are ASCII by construction.
func exportName(codecName string) string {
	if codecName == "" {
		return codecName
	}
	c := codecName[0]
	if 'a' <= c && c <= 'z' {
		c -= 'a' - 'A'
	}
	return string(c) + codecName[1:]
}

func serviceDesc(codecName string) *grpc.ServiceDesc {
	return &grpc.ServiceDesc{
		ServiceName: serviceName(codecName),
		HandlerType: (*TranscoderServer)(nil),
		Methods: []grpc.MethodDesc{
			{MethodName: "Encode", Handler: unaryHandler(codecName, "Encode")},
			{MethodName: "Decode", Handler: unaryHandler(codecName, "Decode")},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "codec.proto",
	}
}

func unaryHandler(codecName, method string) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	fullMethod := "/" + serviceName(codecName) + "/" + method
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(wrapperspb.BytesValue)
		if err := dec(in); err != nil {
			return nil, err
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			b := req.(*wrapperspb.BytesValue)
			if method == "Encode" {
				return srv.(TranscoderServer).Encode(ctx, codecName, b)
			}
			return srv.(TranscoderServer).Decode(ctx, codecName, b)
		}
		if interceptor == nil {
			return handler(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, handler)
	}
}
