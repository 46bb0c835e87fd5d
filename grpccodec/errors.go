package grpccodec

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/momtools/mom/codec"
)

// mapRPC rebuilds the codec error taxonomy from a gRPC status, undoing
// the mapping in mapErr. Statuses outside the taxonomy pass through.
func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return statusError(codec.KindInvalidInput, st.Message())
	case codes.DataLoss:
		return statusError(codec.KindInvalidEncoding, st.Message())
	default:
		return err
	}
}

// statusError reconstructs a *codec.Error from the "RULEID: message"
// form produced by statusMessage.
func statusError(kind codec.Kind, msg string) error {
	ruleID := ""
	if id, rest, ok := strings.Cut(msg, ": "); ok && strings.HasPrefix(id, "CODEC-") {
		ruleID = id
		msg = rest
	}
	return &codec.Error{Kind: kind, RuleID: ruleID, Message: msg}
}
