// Package platform provides platform-specific fact source implementations
package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/wesleywu/netfacts/internal/facts"
)

// runCommand invokes a read-only platform utility and returns its stdout.
// Failures are classified into the collection error taxonomy: a command
// that cannot be resolved in PATH is a missing dependency, a privilege
// failure is permission-denied, anything else is a collection error.
func runCommand(category facts.Category, name string, args ...string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", facts.DependencyMissing(category, fmt.Errorf("%s: %w", name, err))
	}

	cmd := exec.Command(path, args...)
	output, err := cmd.Output()
	if err != nil {
		return "", classifyExecError(category, name, err)
	}

	return string(output), nil
}

func classifyExecError(category facts.Category, name string, err error) error {
	if isPermissionError(err) {
		return facts.PermissionDenied(category, fmt.Errorf("%s: %w", name, err))
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		if stderr != "" {
			if isPermissionText(stderr) {
				return facts.PermissionDenied(category, fmt.Errorf("%s: %s", name, stderr))
			}
			return facts.CollectionFailed(category, fmt.Errorf("%s: %s: %w", name, stderr, err))
		}
	}

	return facts.CollectionFailed(category, fmt.Errorf("%s: %w", name, err))
}

// isPermissionText catches utilities that report privilege failures only
// through their exit message
func isPermissionText(stderr string) bool {
	lower := strings.ToLower(stderr)
	return strings.Contains(lower, "permission denied") ||
		strings.Contains(lower, "operation not permitted") ||
		strings.Contains(lower, "access is denied")
}

// classifyFileError maps a file open/read failure for an OS-provided data
// file (resolv.conf, /proc tables) into the collection error taxonomy
func classifyFileError(category facts.Category, path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return facts.DependencyMissing(category, fmt.Errorf("%s: %w", path, err))
	case os.IsPermission(err):
		return facts.PermissionDenied(category, fmt.Errorf("%s: %w", path, err))
	default:
		return facts.CollectionFailed(category, fmt.Errorf("%s: %w", path, err))
	}
}

// commandAvailable resolves a utility in PATH for the startup probe
func commandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// fileReadable reports whether an OS data file can be opened for the
// startup probe
func fileReadable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
