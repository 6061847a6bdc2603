package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogsNewestFirstWithLevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	lines := []string{
		`{"level":"INFO","timestamp":"2026-01-01T00:00:00Z","message":"first","module":"SUBSCRIPTION"}`,
		`not json`,
		`{"level":"ERROR","timestamp":"2026-01-01T00:00:01Z","message":"second","module":"BOOKING"}`,
		`{"level":"INFO","timestamp":"2026-01-01T00:00:02Z","message":"third","module":"EXPIRY"}`,
	}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))

	l := &ZapLogger{filePath: path}

	all, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Message)
	assert.NotEmpty(t, all[0].Id)

	infos, err := l.GetLogs("INFO", 1, 1)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "first", infos[0].Message)
}

func TestGetLogsMissingFile(t *testing.T) {
	l := &ZapLogger{filePath: filepath.Join(t.TempDir(), "missing.log")}
	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
