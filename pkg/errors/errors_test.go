package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidColor, "bad color %q", "zzz")
	if got := err.Error(); got != `INVALID_COLOR: bad color "zzz"` {
		t.Errorf("Error() = %q", got)
	}

	wrapped := Wrap(ErrCodeFileNotFound, stderrors.New("no such file"), "open %s", "data.json")
	if !strings.Contains(wrapped.Error(), "no such file") {
		t.Errorf("wrapped Error() = %q, missing cause", wrapped.Error())
	}
}

func TestUnwrapChain(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeInternal, cause, "context")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
	if !Is(fmt.Errorf("outer: %w", err), ErrCodeInternal) {
		t.Error("Is should find the code through a wrapping chain")
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "bad format")

	if !Is(err, ErrCodeInvalidFormat) {
		t.Error("Is should match the code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match a plain error")
	}

	if got := GetCode(err); got != ErrCodeInvalidFormat {
		t.Errorf("GetCode = %q", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidDataset, "dataset has no items")
	if got := UserMessage(err); got != "dataset has no items" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
