package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewJSONLogger(WARNING, buf)

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warnf("warn %d", 3)
	l.Errorf("error %d", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "warn 3", entry["msg"])
	require.Equal(t, "warning", entry["level"])
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	require.Equal(t, DEBUG, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, INFO, level)

	_, err = ParseLevel("verbose")
	require.Error(t, err)
}
