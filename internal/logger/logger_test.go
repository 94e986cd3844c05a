package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Mirror(t *testing.T) {
	var buf bytes.Buffer
	l := New(nil)
	l.Infof("before")

	stop := l.Mirror(&buf)
	l.Infof("checked %d files", 2)
	l.Errorf("bad.json: kind: unknown RefactoringKind")
	stop()
	stop()
	l.Infof("after")

	assert.Equal(t, "[INFO] checked 2 files\n[ERROR] bad.json: kind: unknown RefactoringKind\n", buf.String())
}

func TestLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Warnf("unrecognized %s value %q", "FlutterOutlineKind", "SLIVER_LIST")

	assert.Contains(t, buf.String(), `[WARN] unrecognized FlutterOutlineKind value "SLIVER_LIST"`)
}

func TestLogger_RedactsHomeDirectory(t *testing.T) {
	l := New(nil)
	l.home = "/home/dev"
	ch := l.Subscribe()
	l.Errorf("failed to read /home/dev/project/params.json")

	entry := <-ch
	assert.Equal(t, "failed to read ~/project/params.json", entry.Message)
}

func TestLogger_WritesFile(t *testing.T) {
	l := New(nil)
	assert.Empty(t, l.FilePath())
	require.NoError(t, l.Open(t.TempDir()))
	assert.Error(t, l.Open(t.TempDir()))

	l.Infof("checked %d files", 3)
	l.Errorf("bad.json: kind: unknown RefactoringKind")
	path := l.FilePath()
	l.Close()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []LogEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry LogEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines = append(lines, entry)
	}
	require.Len(t, lines, 2)
	assert.Equal(t, "checked 3 files", lines[0].Message)
	assert.Equal(t, LevelError, lines[1].Level)
}

func TestLogger_Subscribe(t *testing.T) {
	l := New(nil)
	ch := l.Subscribe()

	l.Debugf("hello")
	entry := <-ch
	assert.Equal(t, "hello", entry.Message)

	l.Unsubscribe(ch)
	l.Unsubscribe(ch)
	_, open := <-ch
	assert.False(t, open)
}
