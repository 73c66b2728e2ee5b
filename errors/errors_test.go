package errors

import (
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodePanelNotFound, "panel \"terminal\" not found")
	want := "PANEL_NOT_FOUND: panel \"terminal\" not found"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("read failed")
	err := Wrap(cause, ErrCodeSettingsLoad, "failed to load settings")

	if err.Unwrap() != cause {
		t.Errorf("Expected Unwrap to return the original cause")
	}
	if got := err.Error(); got != "SETTINGS_LOAD: failed to load settings (caused by: read failed)" {
		t.Errorf("Unexpected error string: %q", got)
	}
}

func TestIsMatchesThroughWrapping(t *testing.T) {
	inner := New(ErrCodeInvalidPosition, "invalid dock position \"top\"")
	outer := Wrap(inner, ErrCodeConfigInvalid, "bad config")

	if !Is(outer, ErrCodeConfigInvalid) {
		t.Errorf("Expected Is to match the outer code")
	}
	if !Is(inner, ErrCodeInvalidPosition) {
		t.Errorf("Expected Is to match the inner code")
	}
	if Is(nil, ErrCodeInternal) {
		t.Errorf("Is(nil) should be false")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"workbench error", PanelNotFound("git"), ErrCodePanelNotFound},
		{"wrapped stdlib", fmt.Errorf("outer: %w", InvalidPosition("top")), ErrCodeInvalidPosition},
		{"plain error", fmt.Errorf("plain"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := PositionRejected("git", "Bottom")
	if err.Details["panel"] != "git" {
		t.Errorf("Expected panel detail to be recorded, got %v", err.Details)
	}
	if err.Details["position"] != "Bottom" {
		t.Errorf("Expected position detail to be recorded, got %v", err.Details)
	}
}
