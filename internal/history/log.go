package history

import (
	"bufio"
	"fmt"
	"time"

	"github.com/jakoblorz/fsx/internal/filesystem"
)

const timeLayout = "2006-01-02 15:04:05"

// Log is the append-only activity log. Each record is one line of the form
// "[YYYY-MM-DD HH:MM:SS] <description>". The log file is opened and closed
// per call; no handle is held between records.
type Log struct {
	fs   filesystem.FileSystem
	path string
	now  func() time.Time
}

// Option configures log behavior.
type Option func(*Log)

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

// New creates a Log backed by the given filesystem and file path.
func New(fs filesystem.FileSystem, path string, options ...Option) *Log {
	l := &Log{
		fs:   fs,
		path: path,
		now:  time.Now,
	}

	for _, option := range options {
		option(l)
	}

	return l
}

// Record appends one timestamped line, creating the log file if absent.
// Failures are swallowed: logging must never abort the action that
// triggered it.
func (l *Log) Record(description string) {
	w, err := l.fs.Append(l.path)
	if err != nil {
		return
	}
	defer w.Close()

	_, _ = fmt.Fprintf(w, "[%s] %s\n", l.now().Format(timeLayout), description)
}

// ReadAll returns all previously written lines in write order. The second
// return value is false when no log exists yet.
func (l *Log) ReadAll() ([]string, bool) {
	r, err := l.fs.Open(l.path)
	if err != nil {
		return nil, false
	}
	defer r.Close()

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, true
}
