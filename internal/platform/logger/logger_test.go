package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"nonsense", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			l, err := New(Config{Level: tt.level, Output: "stdout"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNew_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestNew_JSONFieldNames(t *testing.T) {
	t.Parallel()

	l, err := New(Config{Format: "json"})
	require.NoError(t, err)

	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.WithComponent("binance").Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "binance", line["component"])
	assert.Contains(t, line, "timestamp")
}

func TestNew_FileOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	rotated, err := New(Config{Output: filepath.Join(dir, "rotated.log"), MaxAgeDays: 7})
	require.NoError(t, err)
	_, ok := rotated.Out.(*lumberjack.Logger)
	assert.True(t, ok, "expected lumberjack writer when MaxAgeDays > 0")

	plainPath := filepath.Join(dir, "plain.log")
	plain, err := New(Config{Output: plainPath})
	require.NoError(t, err)
	plain.Info("written")
	f, ok := plain.Out.(*os.File)
	require.True(t, ok)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(plainPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")
}

func TestNewDiscard(t *testing.T) {
	t.Parallel()

	l := NewDiscard()
	assert.NotPanics(t, func() { l.WithComponent("x").Error("dropped") })
}
