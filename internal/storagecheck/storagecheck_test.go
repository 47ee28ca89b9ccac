package storagecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFreeBytes_ReportsSpace - a real directory reports nonzero free space
func TestFreeBytes_ReportsSpace(t *testing.T) {
	free, err := FreeBytes(t.TempDir())

	require.NoError(t, err)
	assert.Greater(t, free, uint64(0))
}

// TestFreeBytes_MissingPath - a missing path surfaces an error
func TestFreeBytes_MissingPath(t *testing.T) {
	_, err := FreeBytes("/path/that/does/not/exist/anywhere")

	assert.Error(t, err)
}

// TestCheck_PassesWithSmallThreshold - any real filesystem has one free byte
func TestCheck_PassesWithSmallThreshold(t *testing.T) {
	assert.NoError(t, Check(t.TempDir(), 1))
}

// TestCheck_FailsWhenThresholdHuge - an absurd threshold trips the check
func TestCheck_FailsWhenThresholdHuge(t *testing.T) {
	err := Check(t.TempDir(), ^uint64(0))

	assert.Error(t, err)
}
