package codec

import "errors"

// Kind classifies decode failures so callers can branch without
// string-matching. Every decoder in this package returns a *Error
// carrying exactly one Kind; the set below is closed.
type Kind string

const (
	// KindInvalidInput marks input that is structurally wrong for a
	// decoder: odd-length hex, non-hex digits, a binary string whose
	// length is not a multiple of 4, malformed base64, and so on.
	KindInvalidInput Kind = "InvalidInput"

	// KindInvalidEncoding marks input that parses but violates a format
	// invariant, such as an MPI magnitude with its high bit set.
	KindInvalidEncoding Kind = "InvalidEncoding"

	// KindMalformed marks framing errors: a declared length that does
	// not match the bytes actually present.
	KindMalformed Kind = "Malformed"
)

// Error is the failure value every decoder returns. RuleID names the
// violated constraint (CODEC-HEX-001, CODEC-MPI-002, ...) and is
// stable; Message is for humans and may be reworded between releases.
// Extract with errors.As, or use the IsKind/RuleID shortcuts.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

// wrapError keeps the underlying library error on the chain so
// errors.Is still sees it (base58, base32, varint all export
// sentinels worth testing against).
func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// IsKind reports whether err wraps a *Error of the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID extracts the rule identifier from err, or "" when err does
// not wrap a *Error.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
