package sitemap

import (
	"log"
)

// Logger receives the Router's messages. Arguments are handled in the manner of fmt.Printf.
type Logger interface {
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// StdLogger writes messages through a log.Logger, prefixed with their level.
// A nil Logger field stands for the standard logger.
type StdLogger struct {
	Logger *log.Logger
	Debugs bool // write Debug messages too
}

func (l *StdLogger) log(level string, msg string, args ...interface{}) {
	out := l.Logger
	if out == nil {
		out = log.Default()
	}
	out.Printf("[%s] "+msg, append([]interface{}{level}, args...)...)
}

func (l *StdLogger) Info(msg string, args ...interface{})  { l.log("INFO", msg, args...) }
func (l *StdLogger) Warn(msg string, args ...interface{})  { l.log("WARN", msg, args...) }
func (l *StdLogger) Error(msg string, args ...interface{}) { l.log("ERROR", msg, args...) }

func (l *StdLogger) Debug(msg string, args ...interface{}) {
	if l.Debugs {
		l.log("DEBUG", msg, args...)
	}
}
