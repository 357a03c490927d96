package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "debug-") && strings.HasSuffix(e.Name(), ".log") {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestDebug_Unconfigured(t *testing.T) {
	ConfigureDebug("")

	// Must not panic or create anything
	Debug("nothing configured %d", 1)
	Warn("still nothing")
}

func TestDebug_CreatesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	ConfigureDebug(dir)
	defer ConfigureDebug("")

	Debug("Test message with %s and %d", "string", 42)
	Warn("careful: %v", "warning")

	names := logFiles(t, dir)
	require.Len(t, names, 1)

	data, err := os.ReadFile(filepath.Join(dir, names[0]))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Test message with string and 42")
	assert.Contains(t, string(data), "level=DEBUG")
	assert.Contains(t, string(data), "level=WARN")
}

func TestDebug_HandlesEmptyMessage(t *testing.T) {
	ConfigureDebug(t.TempDir())
	defer ConfigureDebug("")

	Debug("")
	Debug("   ")
	Debug("Message with special chars: %% \\n \\t")
}

func TestDebug_ReconfigureOpensNewFile(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	ConfigureDebug(first)
	Debug("one")
	ConfigureDebug(second)
	Debug("two")
	ConfigureDebug("")

	assert.Len(t, logFiles(t, first), 1)
	assert.Len(t, logFiles(t, second), 1)
}

func TestCleanupLogs(t *testing.T) {
	tempDir := t.TempDir()
	ConfigureDebug(tempDir)
	defer ConfigureDebug("")

	baseTime := time.Now()
	for i := 0; i < 10; i++ {
		ts := baseTime.Add(time.Duration(i) * time.Hour)
		filename := fmt.Sprintf("debug-%s.log", ts.Format("20060102-150405"))
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, filename), []byte("dummy log"), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "notes.txt"), []byte("keep me"), 0644))

	CleanupLogs(5)

	names := logFiles(t, tempDir)
	assert.Len(t, names, 5)

	newest := fmt.Sprintf("debug-%s.log", baseTime.Add(9*time.Hour).Format("20060102-150405"))
	oldest := fmt.Sprintf("debug-%s.log", baseTime.Format("20060102-150405"))
	assert.Contains(t, names, newest)
	assert.NotContains(t, names, oldest)

	_, err := os.Stat(filepath.Join(tempDir, "notes.txt"))
	assert.NoError(t, err, "unrelated files are left alone")
}

func TestCleanupLogs_FewerThanKeep(t *testing.T) {
	tempDir := t.TempDir()
	ConfigureDebug(tempDir)
	defer ConfigureDebug("")

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "debug-20240101-000000.log"), nil, 0644))
	CleanupLogs(5)

	assert.Len(t, logFiles(t, tempDir), 1)
}
