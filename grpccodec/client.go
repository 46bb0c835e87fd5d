package grpccodec

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client calls a remote codec service.
type Client struct {
	cc *grpc.ClientConn

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, Timeout: 0}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// Encode runs data through the named codec's encoder on the server.
func (c *Client) Encode(codecName string, data []byte) ([]byte, error) {
	return c.invoke(codecName, "Encode", data)
}

// Decode runs data through the named codec's decoder on the server.
// Registry decode failures come back as structured *codec.Error values.
func (c *Client) Decode(codecName string, data []byte) ([]byte, error) {
	return c.invoke(codecName, "Decode", data)
}

func (c *Client) invoke(codecName, method string, data []byte) ([]byte, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/"+serviceName(codecName)+"/"+method, wrapperspb.Bytes(data), out)
	if err != nil {
		return nil, mapRPC(err)
	}
	return out.GetValue(), nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
