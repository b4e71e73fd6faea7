package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// minLevelCore drops entries below level regardless of the wrapped core's level.
type minLevelCore struct {
	zapcore.Core

	level zapcore.Level
}

// Enabled reports whether entries at l pass both levels.
func (c *minLevelCore) Enabled(l zapcore.Level) bool {
	return c.level.Enabled(l) && c.Core.Enabled(l)
}

// Check adds the core to ce when the entry level is enabled.
//
//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *minLevelCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

// With keeps the minimum level on derived cores.
//
//nolint:ireturn,nolintlint // Returning zapcore.Core is intended for zap integration.
func (c *minLevelCore) With(fields []zapcore.Field) zapcore.Core {
	return &minLevelCore{
		Core:  c.Core.With(fields),
		level: c.level,
	}
}

// MinLevel is a zap option that raises the minimum level of a logger.
//
//nolint:ireturn,nolintlint // Returning zap.Option is intended for zap integration.
func MinLevel(lvl zapcore.Level) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &minLevelCore{Core: core, level: lvl}
	})
}

// WithMinLevel returns a copy of l that only logs entries at lvl or above.
// Third-party components that log verbosely are given such a logger.
func WithMinLevel(l *zap.SugaredLogger, lvl zapcore.Level) *zap.SugaredLogger {
	return l.Desugar().WithOptions(MinLevel(lvl)).Sugar()
}
