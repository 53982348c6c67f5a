package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Settings holds everything the binaries read at startup.
type Settings struct {
	ScoreBackend string `toml:"score_backend"` // "json" or "sqlite"
	ScoreFile    string `toml:"score_file"`
	SQLitePath   string `toml:"sqlite_path"`
	LogLevel     string `toml:"log_level"`
	LogFile      string `toml:"log_file"` // Local game only; empty discards

	SSHHost          string `toml:"ssh_host"`
	SSHPort          string `toml:"ssh_port"`
	SSHHostKey       string `toml:"ssh_host_key"`
	SSHRatePerMinute int    `toml:"ssh_rate_per_minute"` // New sessions per client IP
	SSHIdleSeconds   int    `toml:"ssh_idle_seconds"`    // Zero keeps idle sessions open

	WebHost        string `toml:"web_host"`
	WebPort        string `toml:"web_port"`
	SSHDisplayHost string `toml:"ssh_display_host"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		ScoreBackend:     "json",
		ScoreFile:        "highscores.json",
		SQLitePath:       "highscores.db",
		LogLevel:         "info",
		SSHHost:          "::",
		SSHPort:          "2222",
		SSHHostKey:       "/app/keys/host_key",
		SSHRatePerMinute: 10,
		SSHIdleSeconds:   120,
		WebHost:          "0.0.0.0",
		WebPort:          "8080",
		SSHDisplayHost:   "your-server.com",
	}
}

// Load reads .env if present, then the TOML file named by PONG_CONFIG,
// then the environment. Later sources win.
func Load() (Settings, error) {
	_ = godotenv.Load()

	s := Defaults()
	if path := GetEnv("PONG_CONFIG", ""); path != "" {
		if _, err := toml.DecodeFile(path, &s); err != nil {
			return s, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := s.applyEnv(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *Settings) applyEnv() error {
	s.ScoreBackend = GetEnv("PONG_SCORE_BACKEND", s.ScoreBackend)
	s.ScoreFile = GetEnv("PONG_SCORE_FILE", s.ScoreFile)
	s.SQLitePath = GetEnv("PONG_SQLITE_PATH", s.SQLitePath)
	s.LogLevel = GetEnv("PONG_LOG_LEVEL", s.LogLevel)
	s.LogFile = GetEnv("PONG_LOG_FILE", s.LogFile)

	s.SSHHost = GetEnv("SSH_HOST", s.SSHHost)
	s.SSHPort = GetEnv("SSH_PORT", s.SSHPort)
	s.SSHHostKey = GetEnv("SSH_HOST_KEY", s.SSHHostKey)
	rate, err := GetEnvInt("SSH_RATE_PER_MINUTE", s.SSHRatePerMinute)
	if err != nil {
		return err
	}
	s.SSHRatePerMinute = rate
	idle, err := GetEnvInt("SSH_IDLE_SECONDS", s.SSHIdleSeconds)
	if err != nil {
		return err
	}
	s.SSHIdleSeconds = idle

	s.WebHost = GetEnv("WEB_HOST", s.WebHost)
	s.WebPort = GetEnv("WEB_PORT", s.WebPort)
	s.SSHDisplayHost = GetEnv("SSH_DISPLAY_HOST", s.SSHDisplayHost)
	return nil
}

// ScorePath returns the store location for the configured backend.
func (s Settings) ScorePath() string {
	if s.ScoreBackend == "sqlite" {
		return s.SQLitePath
	}
	return s.ScoreFile
}
