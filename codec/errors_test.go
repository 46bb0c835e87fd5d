package codec

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindsAndRuleIDs(t *testing.T) {
	cases := []struct {
		err    error
		kind   Kind
		ruleID string
	}{
		{mustErr(t, func() error { _, err := HexDecode([]byte("0")); return err }), KindInvalidInput, "CODEC-HEX-001"},
		{mustErr(t, func() error { _, err := BinDecode([]byte("010")); return err }), KindInvalidInput, "CODEC-BIN-001"},
		{mustErr(t, func() error { _, err := BinDecode([]byte("0002")); return err }), KindInvalidInput, "CODEC-BIN-002"},
		{mustErr(t, func() error { _, err := Base64Decode([]byte("!")); return err }), KindInvalidInput, "CODEC-B64-001"},
		{mustErr(t, func() error { _, err := DecimalDecode([]byte("x")); return err }), KindInvalidInput, "CODEC-DEC-001"},
		{mustErr(t, func() error { _, err := MPIDecode(nil); return err }), KindMalformed, "CODEC-MPI-001"},
		{mustErr(t, func() error { _, err := MPIDecode([]byte{0, 0, 0, 9, 0x01}); return err }), KindMalformed, "CODEC-MPI-002"},
		{mustErr(t, func() error { _, err := MPIDecode([]byte{0, 0, 0, 1, 0x80}); return err }), KindInvalidEncoding, "CODEC-MPI-003"},
	}
	for _, tc := range cases {
		if !IsKind(tc.err, tc.kind) {
			t.Errorf("error %v: kind = %v, want %v", tc.err, kindOf(tc.err), tc.kind)
		}
		if got := RuleID(tc.err); got != tc.ruleID {
			t.Errorf("error %v: rule ID = %q, want %q", tc.err, got, tc.ruleID)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	_, err := HexDecode([]byte("zz"))
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if e.Cause == nil {
		t.Fatalf("expected wrapped cause from the hex decoder")
	}
	if !errors.Is(err, e.Cause) {
		t.Fatalf("Unwrap chain broken")
	}
}

func mustErr(t *testing.T, fn func() error) error {
	t.Helper()
	err := fn()
	if err == nil {
		t.Fatalf("expected an error")
	}
	return err
}

func kindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return Kind(fmt.Sprintf("<%T>", err))
	}
	return e.Kind
}
