package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify("Success", "saved", types.SeveritySuccess)
	r.Notify("Error", "failed", types.SeverityError)

	events := r.Events()
	require.Len(t, events, 2)
	assert.Equal(t, types.Notification{Title: "Success", Message: "saved", Severity: types.SeveritySuccess}, events[0])

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, types.SeverityError, last.Severity)

	r.Reset()
	assert.Empty(t, r.Events())
}

func TestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewLogger(zap.New(core))

	l.Notify("Success", "Contacts updated successfully!", types.SeveritySuccess)
	l.Notify("Error", "Error updating contacts. Please try again.", types.SeverityError)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "Contacts updated successfully!", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "error", entries[1].ContextMap()["severity"])
}

func TestMultiFansOut(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	Multi{a, Nop{}, b}.Notify("Info", "hello", types.SeverityInfo)
	assert.Len(t, a.Events(), 1)
	assert.Len(t, b.Events(), 1)
}

func TestWriter(t *testing.T) {
	var sb strings.Builder
	w := Writer{W: &sb}
	w.Notify("Success", "Contacts updated successfully!", types.SeveritySuccess)
	w.Notify("Error", "boom", types.SeverityError)
	assert.Equal(t, "Success: Contacts updated successfully!\nError: boom\n", sb.String())
}
