package logging

import (
	"fmt"
	"strings"
	"sync"
)

// Entry is one message captured by a Recorder.
type Entry struct {
	Mode    ModeFlag
	Message string
}

// Recorder is a Logger that keeps every message in memory. It is meant for tests
// and for callers that want to inspect diagnostics after a run.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) record(m ModeFlag, format string, args ...interface{}) {
	r.mu.Lock()
	r.entries = append(r.entries, Entry{Mode: m, Message: fmt.Sprintf(format, args...)})
	r.mu.Unlock()
}

func (r *Recorder) Debugf(format string, args ...interface{})    { r.record(DebugMode, format, args...) }
func (r *Recorder) Infof(format string, args ...interface{})     { r.record(InfoMode, format, args...) }
func (r *Recorder) Warningf(format string, args ...interface{})  { r.record(WarningMode, format, args...) }
func (r *Recorder) Errorf(format string, args ...interface{})    { r.record(ErrorMode, format, args...) }
func (r *Recorder) Criticalf(format string, args ...interface{}) { r.record(CriticalMode, format, args...) }
func (r *Recorder) Shutdown()                                    {}

// Entries returns a copy of the captured messages.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the captured messages at exactly the given mode.
func (r *Recorder) Messages(m ModeFlag) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Mode == m {
			out = append(out, e.Message)
		}
	}
	return out
}

// Contains reports whether any message at mode m contains substr.
func (r *Recorder) Contains(m ModeFlag, substr string) bool {
	for _, msg := range r.Messages(m) {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}
