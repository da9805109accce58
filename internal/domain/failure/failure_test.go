package failure

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: errors.New("boom"), want: ""},
		{name: "direct", err: New(Validation, "Passwords do not match"), want: Validation},
		{name: "wrapped", err: fmt.Errorf("sign in: %w", Wrap(Transport, 0, io.EOF)), want: Transport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
			if tt.want != "" && !Is(tt.err, tt.want) {
				t.Errorf("Is(%q) = false", tt.want)
			}
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	err := Wrap(Status, 404, errors.New("not found"))
	if got := err.Error(); got != "STATUS (status 404): not found" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, err.Err) {
		t.Error("Unwrap should expose the cause")
	}

	rejected := &Error{Kind: Rejected, Status: 401, Message: "Invalid credentials"}
	if got := rejected.Error(); got != "REJECTED (status 401): Invalid credentials" {
		t.Errorf("Error() = %q", got)
	}
}

func TestMessageOf(t *testing.T) {
	if got := MessageOf(New(Rejected, "Invalid credentials"), "fallback"); got != "Invalid credentials" {
		t.Errorf("MessageOf() = %q", got)
	}
	if got := MessageOf(Wrap(Transport, 0, io.EOF), "fallback"); got != "fallback" {
		t.Errorf("MessageOf() = %q", got)
	}
	if got := MessageOf(errors.New("plain"), "fallback"); got != "fallback" {
		t.Errorf("MessageOf() = %q", got)
	}
}
