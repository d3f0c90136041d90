// package testing contains shared testing utilities
package testing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// WriteFixture writes content to name under a fresh temp directory and
// returns the file's path. The directory is cleaned up with the test.
func WriteFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
