package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidShape, "unknown shape kind: %s", "hexagon")

	if err.Code != ErrCodeInvalidShape {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidShape)
	}
	want := "INVALID_SHAPE: unknown shape kind: hexagon"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Wrap(ErrCodeIO, cause, "write %s", "/tmp/out.drawio")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	want := "IO_ERROR: write /tmp/out.drawio: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidColor, "bad hex")

	if !Is(err, ErrCodeInvalidColor) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeIO) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeIO) {
		t.Error("Is() should not match a plain error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeNotFound, "cell not on page")
	outer := fmt.Errorf("serialize: %w", inner)

	if !Is(outer, ErrCodeNotFound) {
		t.Error("Is() should unwrap fmt-wrapped errors")
	}
	if GetCode(outer) != ErrCodeNotFound {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeNotFound)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidScene, "shape 3 has no kind")
	if got := UserMessage(err); got != "shape 3 has no kind" {
		t.Errorf("UserMessage() = %q, want %q", got, "shape 3 has no kind")
	}

	plain := stderrors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain error")
	}
}
