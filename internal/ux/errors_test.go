package ux

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorWithSuggestion(t *testing.T) {
	base := errors.New("something broke")
	err := NewErrorWithSuggestion(base, "try again")

	if !strings.Contains(err.Error(), "something broke") {
		t.Errorf("expected base message in output")
	}
	if !strings.Contains(err.Error(), "try again") {
		t.Errorf("expected suggestion in output")
	}
	if !errors.Is(err, base) {
		t.Errorf("expected Unwrap to expose the base error")
	}
}

func TestNewErrorWithSuggestionNil(t *testing.T) {
	if NewErrorWithSuggestion(nil, "whatever") != nil {
		t.Errorf("nil error should stay nil")
	}
}

func TestEnhanceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantInside string
	}{
		{
			name:       "missing plan file",
			err:        errors.New("open /proj/.dpsmith/yadasmith.json: no such file or directory"),
			wantInside: "dpsmith compile",
		},
		{
			name:       "other missing file",
			err:        errors.New("open /proj/dps: no such file or directory"),
			wantInside: "--root",
		},
		{
			name:       "validation failure",
			err:        errors.New("prescription validation failed with 2 error(s)"),
			wantInside: "dpsmith validate",
		},
		{
			name:       "cycle",
			err:        errors.New("circular dependency detected: a -> b -> a"),
			wantInside: "recompile",
		},
		{
			name:       "unknown task",
			err:        errors.New("task not found in plan: ghost"),
			wantInside: "dpsmith status",
		},
		{
			name:       "permissions",
			err:        errors.New("open plan: permission denied"),
			wantInside: "permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enhanced := EnhanceError(tt.err)
			if !strings.Contains(enhanced.Error(), tt.wantInside) {
				t.Errorf("expected suggestion containing %q, got: %s", tt.wantInside, enhanced.Error())
			}
		})
	}
}

func TestEnhanceErrorPassthrough(t *testing.T) {
	err := errors.New("unrecognized condition")
	if EnhanceError(err) != err {
		t.Errorf("unrecognized errors should pass through unchanged")
	}
	if EnhanceError(nil) != nil {
		t.Errorf("nil should stay nil")
	}
}

func TestFormatError(t *testing.T) {
	base := errors.New("circular dependency detected: a -> a")
	err := FormatError(base, "compile")

	if !strings.Contains(err.Error(), "compile: ") {
		t.Errorf("expected context prefix, got: %s", err.Error())
	}
	if !errors.Is(err, base) {
		t.Errorf("expected wrapping to preserve the base error")
	}

	if FormatError(nil, "compile") != nil {
		t.Errorf("nil should stay nil")
	}
}

func TestFormatErrorNoContext(t *testing.T) {
	base := fmt.Errorf("plain")
	if got := FormatError(base, ""); got != base {
		t.Errorf("expected bare enhanced error without context prefix")
	}
}
