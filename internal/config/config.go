package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"tictactoe/internal/engine"
)

// Config 整个程序的配置，可以从 YAML 文件加载，再被环境变量覆盖
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Engine  EngineConfig  `yaml:"engine"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type EngineConfig struct {
	DefaultLevel engine.Level `yaml:"default_level"`
	Seed         int64        `yaml:"seed"` // 0 = 按时间取种子
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug / info / warn / error
	Format string `yaml:"format"` // text / json
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

var ErrInvalidConfig = errors.New("invalid config")

func Default() Config {
	return Config{
		Server:  ServerConfig{Addr: ":2888"},
		Engine:  EngineConfig{DefaultLevel: engine.LevelMaster},
		Log:     LogConfig{Level: "info", Format: "text"},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Load 读取 path（为空则只用默认值），然后应用环境变量覆盖并校验
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("TTT_ADDR"); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup("TTT_LEVEL"); ok && v != "" {
		lvl, err := engine.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("TTT_LEVEL: %w", err)
		}
		c.Engine.DefaultLevel = lvl
	}
	if v, ok := lookup("TTT_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: TTT_SEED %q: %v", ErrInvalidConfig, v, err)
		}
		c.Engine.Seed = seed
	}
	if v, ok := lookup("TTT_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if !c.Engine.DefaultLevel.Valid() {
		return fmt.Errorf("%w: engine.default_level", ErrInvalidConfig)
	}
	if _, err := parseLogLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, s)
	}
}
