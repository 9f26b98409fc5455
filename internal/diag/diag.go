package diag

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Logger writes leveled diagnostic lines for a single merge run. Level 0 is
// silent except for warnings; higher levels add progressively noisier
// tracing. Each run carries a UUID so interleaved logs from scripted batch
// runs can be told apart.
type Logger struct {
	w     io.Writer
	level int
	runID string
}

// New returns a logger writing to w at the given verbosity.
func New(w io.Writer, level int) *Logger {
	return &Logger{w: w, level: level, runID: uuid.NewString()}
}

// Discard returns a logger that drops everything, warnings included.
func Discard() *Logger {
	return &Logger{w: io.Discard}
}

// RunID returns the identifier stamped on this run.
func (l *Logger) RunID() string { return l.runID }

// Enabled reports whether lines at the given level would be written.
func (l *Logger) Enabled(level int) bool { return l.level >= level }

// Debugf writes a trace line when the logger's verbosity reaches level.
func (l *Logger) Debugf(level int, format string, args ...any) {
	if l.level < level {
		return
	}
	fmt.Fprintf(l.w, "DBG_%d %s\n", level, fmt.Sprintf(format, args...))
}

// Warnf writes a warning line regardless of verbosity.
func (l *Logger) Warnf(format string, args ...any) {
	fmt.Fprintf(l.w, "WARNING %s\n", fmt.Sprintf(format, args...))
}
