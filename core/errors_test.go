package core

import (
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"bad request", BadRequest("missing field"), KindBadRequest},
		{"not found", NotFound("gone"), KindNotFound},
		{"conflict", Conflict("dup"), KindConflict},
		{"internal", Internal("boom"), KindInternal},
		{"wrapped", fmt.Errorf("confirm: %w", Conflict("dup")), KindConflict},
		{"plain error defaults to internal", fmt.Errorf("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	err := Conflict("insufficient balance")
	if got := err.Error(); got != "conflict: insufficient balance" {
		t.Errorf("Error() = %q", got)
	}
}
