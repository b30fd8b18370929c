// internal/security/permissions.go
package security

import (
	"fmt"
	"os"
)

// ValidateFilePermissions checks that a file others cannot rewrite.
func ValidateFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("checking file permissions: %w", err)
	}

	mode := info.Mode().Perm()
	if mode&0002 != 0 {
		return fmt.Errorf("file %s is world-writable (mode %04o)", path, mode)
	}

	return nil
}

// IsPrivileged reports whether the real or effective user is root.
func IsPrivileged() bool {
	return os.Getuid() == 0 || os.Geteuid() == 0
}
