package sealbridge

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sealbridge/envelope-go/internal/envelope"
)

func TestEnvelopeError(t *testing.T) {
	inner := fmt.Errorf("%w: bad separator", envelope.ErrMalformed)
	err := &EnvelopeError{Format: "keyed", Err: inner}

	if !errors.Is(err, ErrMalformedEnvelope) {
		t.Error("EnvelopeError does not match ErrMalformedEnvelope")
	}
	if !errors.Is(err, envelope.ErrMalformed) {
		t.Error("EnvelopeError does not unwrap to the codec error")
	}

	msg := err.Error()
	if msg == "" {
		t.Error("empty error message")
	}
}

func TestWrapError_Nil(t *testing.T) {
	if wrapError(nil) != nil {
		t.Error("wrapError(nil) != nil")
	}
}

func TestWrapError_Passthrough(t *testing.T) {
	sentinel := errors.New("unrelated")
	if got := wrapError(sentinel); got != sentinel {
		t.Errorf("wrapError() = %v, want passthrough", got)
	}
}
