package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, InfoLogger)
	assert.NotNil(t, ErrorLogger)
	assert.NotNil(t, DebugLogger)
}

func captureInfo() *bytes.Buffer {
	var buf bytes.Buffer
	InfoLogger = log.New(&buf, "INFO: ", 0)
	return &buf
}

func captureError() *bytes.Buffer {
	var buf bytes.Buffer
	ErrorLogger = log.New(&buf, "ERROR: ", 0)
	return &buf
}

func captureDebug() *bytes.Buffer {
	var buf bytes.Buffer
	DebugLogger = log.New(&buf, "DEBUG: ", 0)
	return &buf
}

func TestInfo(t *testing.T) {
	buf := captureInfo()

	Info("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestInfoWithFields(t *testing.T) {
	buf := captureInfo()

	Info("HTTP request", "method", "GET", "status", 200)

	output := buf.String()
	assert.Contains(t, output, "HTTP request")
	assert.Contains(t, output, "method=GET")
	assert.Contains(t, output, "status=200")
}

func TestError(t *testing.T) {
	buf := captureError()

	Error("test error")

	assert.Contains(t, buf.String(), "test error")
}

func TestDebug(t *testing.T) {
	buf := captureDebug()

	Debug("test debug", "slot", 7)

	output := buf.String()
	assert.Contains(t, output, "test debug")
	assert.Contains(t, output, "slot=7")
}

func TestInfof(t *testing.T) {
	buf := captureInfo()

	Infof("test %s", "message")

	assert.Contains(t, buf.String(), "test message")
}

func TestErrorf(t *testing.T) {
	buf := captureError()

	Errorf("failed after %d tries", 3)

	assert.Contains(t, buf.String(), "failed after 3 tries")
}

func TestWithFieldsOddArguments(t *testing.T) {
	// A trailing key without a value is appended as-is.
	assert.Equal(t, "msg dangling", withFields("msg", "dangling"))
	assert.Equal(t, "msg a=1 dangling", withFields("msg", "a", 1, "dangling"))
}
