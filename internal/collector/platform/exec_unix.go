//go:build darwin || freebsd || linux

package platform

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// isPermissionError reports whether err is a privilege failure
func isPermissionError(err error) bool {
	if errors.Is(err, os.ErrPermission) {
		return true
	}

	var errno unix.Errno
	if errors.As(err, &errno) {
		return errno == unix.EACCES || errno == unix.EPERM
	}

	return false
}
