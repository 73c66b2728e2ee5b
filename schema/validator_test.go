package schema

import (
	"strings"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid full config",
			yaml: `
version: "1.0"
tui:
  theme: kanagawa
  icons: nerd
workbench:
  placement:
    Terminal: bottom
bridge:
  enabled: true
  listen: "127.0.0.1:7599"
`,
			wantError: false,
		},
		{
			name:      "empty document",
			yaml:      "",
			wantError: false,
		},
		{
			name: "extension sections allowed",
			yaml: `
version: "1.0"
logging:
  level: debug
`,
			wantError: false,
		},
		{
			name: "unknown tui property",
			yaml: `
tui:
  font: monospace
`,
			wantError: true,
			errorMsg:  "additionalProperties",
		},
		{
			name: "wrong type for hidden_buttons",
			yaml: `
workbench:
  hidden_buttons: "Debug*"
`,
			wantError: true,
		},
		{
			name: "per-TUI keybinding overrides allowed",
			yaml: `
tui:
  keybindings:
    navigation:
      up: ["k"]
    demo:
      docks:
        toggle_left: ["ctrl+b"]
`,
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig([]byte(tt.yaml))
			if tt.wantError {
				if err == nil {
					t.Error("expected error but got none")
				} else if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error containing '%s', got '%s'", tt.errorMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}
