// Package logging provides the levelled logger shared by every package of the
// train conductor world tools.
//
// Messages go through a package-level Logger and are filtered by the current
// ModeFlag. SetLogMode(WarningMode) keeps Warningf, Errorf and Criticalf output
// and drops everything below. Engine packages accept an injected Logger so tests
// can capture diagnostics.
package logging

import (
	"sync"
	"time"
)

// ModeFlag is the minimum severity a message needs to be written.
type ModeFlag uint

const (
	DebugMode ModeFlag = iota
	InfoMode
	WarningMode
	ErrorMode
	CriticalMode
	SilentMode
)

// Logger provides a way for the application to log messages at different severities.
type Logger interface {
	// Debugf formats its arguments analogous to fmt.Printf and records the text as a log
	// message at Debug level.
	Debugf(format string, args ...interface{})

	// Infof is like Debugf, but at Info level.
	Infof(format string, args ...interface{})

	// Warningf is like Debugf, but at Warning level.
	Warningf(format string, args ...interface{})

	// Errorf is like Debugf, but at Error level.
	Errorf(format string, args ...interface{})

	// Criticalf is like Debugf, but at Critical level.
	Criticalf(format string, args ...interface{})

	// Shutdown makes sure logs are closed.
	Shutdown()
}

var (
	mu     sync.RWMutex
	mode   = InfoMode
	logger Logger = newStdLogger(nil)
)

// SetLogMode sets the severity required for a log message to be printed.
func SetLogMode(newMode ModeFlag) {
	mu.Lock()
	mode = newMode
	mu.Unlock()
}

// LogMode returns the current severity threshold.
func LogMode() ModeFlag {
	mu.RLock()
	defer mu.RUnlock()
	return mode
}

// SetLogger replaces the package-level logger. A nil logger restores stderr output.
func SetLogger(l Logger) {
	if l == nil {
		l = newStdLogger(nil)
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Default returns a Logger that forwards to the package-level functions, so it
// honours both SetLogger and SetLogMode at call time.
func Default() Logger {
	return packageLogger{}
}

func current(level ModeFlag) (Logger, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return logger, mode <= level
}

func Debugf(format string, args ...interface{}) {
	if l, ok := current(DebugMode); ok {
		l.Debugf(format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if l, ok := current(InfoMode); ok {
		l.Infof(format, args...)
	}
}

func Warningf(format string, args ...interface{}) {
	if l, ok := current(WarningMode); ok {
		l.Warningf(format, args...)
	}
}

func Errorf(format string, args ...interface{}) {
	if l, ok := current(ErrorMode); ok {
		l.Errorf(format, args...)
	}
}

func Criticalf(format string, args ...interface{}) {
	if l, ok := current(CriticalMode); ok {
		l.Criticalf(format, args...)
	}
}

// Shutdown closes the package-level logger.
func Shutdown() {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Shutdown()
}

type packageLogger struct{}

func (packageLogger) Debugf(format string, args ...interface{})    { Debugf(format, args...) }
func (packageLogger) Infof(format string, args ...interface{})     { Infof(format, args...) }
func (packageLogger) Warningf(format string, args ...interface{})  { Warningf(format, args...) }
func (packageLogger) Errorf(format string, args ...interface{})    { Errorf(format, args...) }
func (packageLogger) Criticalf(format string, args ...interface{}) { Criticalf(format, args...) }
func (packageLogger) Shutdown()                                    { Shutdown() }

// TimeLog adds elapsed time to logging.
// Example:
//
//	mylog := logging.NewTimeLog()
//	...
//	mylog.Infof("paths resolved")  // Appends elapsed time from NewTimeLog() to message.
type TimeLog struct {
	start time.Time
}

func NewTimeLog() TimeLog {
	return TimeLog{time.Now()}
}

func (t TimeLog) Debugf(format string, args ...interface{}) {
	Debugf(format+": %s", append(args, time.Since(t.start))...)
}

func (t TimeLog) Infof(format string, args ...interface{}) {
	Infof(format+": %s", append(args, time.Since(t.start))...)
}
