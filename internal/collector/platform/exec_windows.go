//go:build windows

package platform

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"
)

// isPermissionError reports whether err is a privilege failure
func isPermissionError(err error) bool {
	if errors.Is(err, os.ErrPermission) {
		return true
	}

	var errno windows.Errno
	if errors.As(err, &errno) {
		return errno == windows.ERROR_ACCESS_DENIED
	}

	return false
}
