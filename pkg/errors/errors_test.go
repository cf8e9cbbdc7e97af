package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "bad value %d", 42)

	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidConfig)
	}
	if err.Message != "bad value 42" {
		t.Errorf("Message = %q, want %q", err.Message, "bad value 42")
	}
	want := "INVALID_CONFIG: bad value 42"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeDecode, cause, "decode %s", "a.png")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
	want := "DECODE_ERROR: decode a.png: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeOversizedTexture, "too big")

	if !Is(err, ErrCodeOversizedTexture) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeDecode) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeDecode) {
		t.Error("Is should not match a plain error")
	}

	// Codes survive fmt wrapping.
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeOversizedTexture) {
		t.Error("Is should unwrap to find the code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "x")); got != ErrCodeNotFound {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode of plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidFormat, "unknown format")); got != "unknown format" {
		t.Errorf("UserMessage = %q, want %q", got, "unknown format")
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage of plain error = %q, want %q", got, "plain")
	}
}
