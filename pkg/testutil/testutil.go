// Package testutil provides testing utilities for matforge
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/matforge/matforge/pkg/logger"
)

// TestLogger creates a test logger that writes to the test output.
// The logger is automatically cleaned up when the test completes.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// ReplaceLogger routes the global logger through the test output until the
// test completes. Accessors report contract violations by logging rather
// than returning errors, so tests exercising those paths keep the reports
// attached to the test that triggered them.
func ReplaceLogger(t *testing.T) {
	t.Helper()
	restore := logger.Replace(zaptest.NewLogger(t))
	t.Cleanup(restore)
}

// WriteFile dumps data into a file under the test temp dir and returns its
// path. The file is removed with the temp dir when the test completes.
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
