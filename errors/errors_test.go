package errors_test

import (
	"errors"
	"testing"

	rierr "github.com/sabouaram/riemann-go-client/errors"
)

func TestNewCarriesCode(t *testing.T) {
	e := rierr.New(rierr.Timeout, "connect timed out")
	if e.Code() != rierr.Timeout {
		t.Fatalf("expected Timeout, got %v", e.Code())
	}
	if e.Unwrap() != nil {
		t.Fatalf("expected no parent")
	}
}

func TestWrapPreservesParent(t *testing.T) {
	parent := errors.New("connection reset by peer")
	e := rierr.Wrap(rierr.IOFailure, "send failed", parent)
	if e.Unwrap() != parent {
		t.Fatalf("expected wrapped parent to be preserved")
	}
	if e.Code() != rierr.IOFailure {
		t.Fatalf("expected IOFailure, got %v", e.Code())
	}
}

func TestIsWalksChain(t *testing.T) {
	inner := rierr.New(rierr.Timeout, "socket timeout")
	outer := rierr.Wrap(rierr.IOFailure, "give up", inner)

	if !rierr.Is(outer, rierr.IOFailure) {
		t.Fatalf("expected outer code to match IOFailure")
	}
	if !rierr.Is(outer, rierr.Timeout) {
		t.Fatalf("expected Is to walk the parent chain and match Timeout")
	}
	if rierr.Is(outer, rierr.CodecFailure) {
		t.Fatalf("expected no match for an unrelated code")
	}
}

func TestCodeStringIsStable(t *testing.T) {
	cases := map[rierr.CodeError]string{
		rierr.IOFailure:     "io failure",
		rierr.Timeout:       "timeout",
		rierr.CodecFailure:  "codec failure",
		rierr.ProtocolError: "riemann protocol error",
		rierr.Unsupported:   "unsupported operation",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Fatalf("CodeError(%d).String() = %q, want %q", code, got, want)
		}
	}
}
