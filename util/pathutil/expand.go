// Package pathutil expands user-supplied paths from configuration files.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand replaces a leading tilde with the user's home directory and expands
// environment variables. A path that cannot be expanded is returned unchanged;
// an unresolvable config path should surface as an open error at the call
// site, not here.
func Expand(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	} else if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
