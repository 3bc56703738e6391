package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, log)
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Info("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestInfoWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Info("slot reserved", "slot_id", 42, "student_id", 7)

	output := buf.String()
	assert.Contains(t, output, "slot reserved")
	assert.Contains(t, output, "slot_id")
	assert.Contains(t, output, "42")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Error("test error")

	assert.Contains(t, buf.String(), "test error")
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	log = New(NewJSONHandler(&buf, opts))

	Debug("test debug")

	assert.Contains(t, buf.String(), "test debug")
}

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Infof("test %s", "message")

	assert.Contains(t, buf.String(), "test message")
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Errorf("failed after %d attempts", 3)

	assert.Contains(t, buf.String(), "failed after 3 attempts")
}
