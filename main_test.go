package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealMainBadFlags(t *testing.T) {
	assert.Equal(t, 2, realMain("snake", []string{"-ui", "vr"}))
	assert.Equal(t, 0, realMain("snake", []string{"-h"}))
}

func TestRealMainHeadlessWallsGame(t *testing.T) {
	dir := t.TempDir()

	// A one-cell snake in the middle of a 2x2 board hits the right wall on the first tick.
	code := realMain("snake", []string{
		"-ui", "headless", "-mode", "walls", "-grid", "2", "-speed", "100", "-seed", "1", "-data", dir,
	})
	require.Equal(t, 0, code)

	data, err := os.ReadFile(filepath.Join(dir, "stats.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cause": "wall"`)
}
