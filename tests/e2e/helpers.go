package main

import (
	"fmt"
	"os/exec"
)

// findWorkbenchBinary locates the workbench binary under test. The Makefile
// puts ./bin on PATH before launching the suite, so a plain PATH lookup
// finds the freshly built binary.
func findWorkbenchBinary() (string, error) {
	path, err := exec.LookPath("workbench")
	if err != nil {
		return "", fmt.Errorf("workbench binary not on PATH (run via 'make test-e2e'): %w", err)
	}
	return path, nil
}
