package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewApp_HasCommands - the root app exposes status, runs and shutdown
func TestNewApp_HasCommands(t *testing.T) {
	app := NewApp()

	require.NotNil(t, app)
	assert.Equal(t, "jobctl", app.Name)

	names := make([]string, 0, len(app.Commands))
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.Contains(t, names, "status")
	assert.Contains(t, names, "runs")
	assert.Contains(t, names, "shutdown")
}
