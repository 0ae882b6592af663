package config

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger 按 log 配置构造 slog.Logger
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLogLevel(c.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
