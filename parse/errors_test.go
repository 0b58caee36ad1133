package parse

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestNoMatchError(t *testing.T) {
	tests := []struct {
		name string
		err  *NoMatch
		want string
	}{
		{"message only", &NoMatch{Pos: 3, Msg: "exhausted all parsers"}, "exhausted all parsers"},
		{"cause only", &NoMatch{Err: ErrTooDeep}, "recursion limit exceeded"},
		{"message and cause", &NoMatch{Msg: "invalid integer literal", Err: errors.New("value out of range")}, "invalid integer literal: value out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsNoMatch(t *testing.T) {
	nm := &NoMatch{Msg: "expected one or more tokens"}

	if !IsNoMatch(nm) {
		t.Error("IsNoMatch(NoMatch) = false, want true")
	}
	if !IsNoMatch(fmt.Errorf("while parsing: %w", nm)) {
		t.Error("IsNoMatch(wrapped NoMatch) = false, want true")
	}
	if IsNoMatch(io.EOF) {
		t.Error("IsNoMatch(io.EOF) = true, want false")
	}
	if IsNoMatch(nil) {
		t.Error("IsNoMatch(nil) = true, want false")
	}
}

func TestNoMatchUnwrap(t *testing.T) {
	nm := &NoMatch{Msg: "recursion limit", Err: ErrTooDeep}
	if !errors.Is(nm, ErrTooDeep) {
		t.Error("errors.Is(nm, ErrTooDeep) = false, want true")
	}
}
