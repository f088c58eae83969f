package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// appenderCore bridges the Appender interface to zapcore.Core so a zap
// logger can be built on top of one or more Appenders, exactly the
// relationship zapcore.Core has to its encoder/sink in stock zap.
type appenderCore struct {
	level     zapcore.LevelEnabler
	appenders []Appender
}

func newAppenderCore(level zapcore.LevelEnabler, appenders ...Appender) zapcore.Core {
	return &appenderCore{level: level, appenders: appenders}
}

func (c *appenderCore) Enabled(lvl zapcore.Level) bool { return c.level.Enabled(lvl) }

func (c *appenderCore) With(fields []zapcore.Field) zapcore.Core {
	return c
}

func (c *appenderCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return ce.AddCore(entry, c)
	}
	return ce
}

func (c *appenderCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	var firstErr error
	for _, a := range c.appenders {
		if err := a.Write(entry, fields); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *appenderCore) Sync() error {
	var firstErr error
	for _, a := range c.appenders {
		if err := a.Sync(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Logger is the structured logger the solver package logs its single
// failure line through. It is always constructed by the caller and passed
// in as a value; the core never holds a package-level logger.
type Logger struct {
	*zap.SugaredLogger
}

// NewDevelopmentLogger builds a Logger writing human-readable lines to
// stdout through a ConsoleAppender, at debug level and above — suitable
// for the example driver and for tests.
func NewDevelopmentLogger() Logger {
	core := newAppenderCore(zapcore.DebugLevel, NewStdoutAppender())
	return Logger{zap.New(core).Sugar()}
}

// NewLogger builds a Logger writing to the given appenders at the given
// minimum level.
func NewLogger(level zapcore.Level, appenders ...Appender) Logger {
	return Logger{zap.New(newAppenderCore(level, appenders...)).Sugar()}
}
