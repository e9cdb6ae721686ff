//go:build !unix

package node

import "os"

// Advisory flock is unavailable here; fall back to plain file I/O.

func lockedRead(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func lockedWrite(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
