package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTouchMarker_CreatesFile - a missing marker file is created with its parent dir
func TestTouchMarker_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "shutdown")

	require.NoError(t, touchMarker(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

// TestTouchMarker_RefreshesExistingFile - an existing marker gets a new mtime
func TestTouchMarker_RefreshesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shutdown")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))
	stale := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, stale, stale))

	require.NoError(t, touchMarker(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), info.ModTime(), time.Minute)
}
