package logger

import "log/slog"

const (
	levelTrace    = slog.LevelDebug - 4
	levelCritical = slog.LevelError + 4
)

func levelName(level slog.Level) string {
	switch level {
	case levelTrace:
		return "TRACE"
	case levelCritical:
		return "CRITICAL"
	default:
		return level.String()
	}
}
