package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("no home directory: %v", err)
	}
	t.Setenv("WB_TEST_DIR", "/var/log")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"absolute path untouched", "/tmp/workbench.log", "/tmp/workbench.log"},
		{"relative path untouched", "logs/workbench.log", "logs/workbench.log"},
		{"bare tilde", "~", home},
		{"tilde prefix", "~/logs/wb.log", filepath.Join(home, "logs", "wb.log")},
		{"tilde mid-path untouched", "/data/~/x", "/data/~/x"},
		{"env var", "$WB_TEST_DIR/wb.log", "/var/log/wb.log"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expand(tt.in); got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
