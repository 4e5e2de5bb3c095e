// Package notify provides the notification sinks handed to the edit manager
// and the inquiry form.
package notify

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contactdesk/pkg/types"
)

// Nop discards every notification.
type Nop struct{}

// Notify implements types.Notifier.
func (Nop) Notify(string, string, types.Severity) {}

// Logger writes notifications as structured log entries. Errors are logged
// at error level, everything else at info level.
type Logger struct {
	logger *zap.Logger
}

// NewLogger returns a Logger writing to logger.
func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{logger: logger}
}

// Notify implements types.Notifier.
func (l *Logger) Notify(title, message string, severity types.Severity) {
	fields := []zap.Field{
		zap.String("title", title),
		zap.String("severity", severity.String()),
	}
	if severity == types.SeverityError {
		l.logger.Error(message, fields...)
		return
	}
	l.logger.Info(message, fields...)
}

// Recorder keeps every notification in memory, in arrival order.
type Recorder struct {
	mu     sync.Mutex
	events []types.Notification
}

// Notify implements types.Notifier.
func (r *Recorder) Notify(title, message string, severity types.Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, types.Notification{Title: title, Message: message, Severity: severity})
}

// Events returns a copy of the recorded notifications.
func (r *Recorder) Events() []types.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

// Last returns the most recent notification.
func (r *Recorder) Last() (types.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return types.Notification{}, false
	}
	return r.events[len(r.events)-1], true
}

// Reset forgets all recorded notifications.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Writer prints each notification as one "Title: message" line, the way a
// terminal shows a toast.
type Writer struct {
	W io.Writer
}

// Notify implements types.Notifier.
func (w Writer) Notify(title, message string, _ types.Severity) {
	fmt.Fprintf(w.W, "%s: %s\n", title, message)
}

// Multi fans a notification out to several sinks.
type Multi []types.Notifier

// Notify implements types.Notifier.
func (m Multi) Notify(title, message string, severity types.Severity) {
	for _, n := range m {
		n.Notify(title, message, severity)
	}
}
