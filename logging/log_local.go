package logging

import (
	"io"
	"log"
	"os"

	"github.com/natefinch/lumberjack"
)

// Config describes where log output goes. An empty Logfile keeps stderr.
type Config struct {
	Logfile string
	MaxSize int  `toml:"max_log_size"`
	MaxAge  int  `toml:"max_log_age"`
	Verbose bool `toml:"verbose"`
}

// SetLogger installs a logger that saves to a rotating log file and sets the log
// mode from Verbose.
func (c *Config) SetLogger() {
	if c != nil && c.Verbose {
		SetLogMode(DebugMode)
	} else {
		SetLogMode(InfoMode)
	}
	if c == nil || c.Logfile == "" {
		SetLogger(nil)
		Debugf("Sending log messages to stderr since no log file specified.")
		return
	}
	l := &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize, // megabytes
		MaxAge:   c.MaxAge,  // days
	}
	SetLogger(newStdLogger(l))
	Infof("Sending log messages to: %s", c.Logfile)
}

type stdLogger struct {
	*log.Logger
	closer io.Closer
}

// newStdLogger writes to w, or to stderr when w is nil.
func newStdLogger(w io.WriteCloser) stdLogger {
	if w == nil {
		return stdLogger{Logger: log.New(os.Stderr, "", log.LstdFlags)}
	}
	return stdLogger{Logger: log.New(w, "", log.LstdFlags), closer: w}
}

func (s stdLogger) Debugf(format string, args ...interface{}) {
	s.Printf("   DEBUG "+format, args...)
}

func (s stdLogger) Infof(format string, args ...interface{}) {
	s.Printf("    INFO "+format, args...)
}

func (s stdLogger) Warningf(format string, args ...interface{}) {
	s.Printf(" WARNING "+format, args...)
}

func (s stdLogger) Errorf(format string, args ...interface{}) {
	s.Printf("   ERROR "+format, args...)
}

func (s stdLogger) Criticalf(format string, args ...interface{}) {
	s.Printf("CRITICAL "+format, args...)
}

func (s stdLogger) Shutdown() {
	if s.closer != nil {
		s.Printf("    INFO Closing log file...")
		s.closer.Close()
	}
}
