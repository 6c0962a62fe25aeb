// Package config layers service configuration: built-in defaults, an
// optional YAML file, then LEADGEN_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "LEADGEN_"

type Config struct {
	Server    Server    `koanf:"server"`
	Database  Database  `koanf:"database"`
	NATS      NATS      `koanf:"nats"`
	Notify    Notify    `koanf:"notify"`
	Log       Log       `koanf:"log"`
	Rules     Rules     `koanf:"rules"`
	Session   Session   `koanf:"session"`
	Anthropic Anthropic `koanf:"anthropic"`
}

type Server struct {
	Port int `koanf:"port"`
}

type Database struct {
	// URL empty means the in-memory session store.
	URL string `koanf:"url"`
}

type NATS struct {
	// URL empty means qualified-lead events are dropped.
	URL   string `koanf:"url"`
	Token string `koanf:"token"`
}

type Notify struct {
	Subject string `koanf:"subject"`
}

type Log struct {
	Level string `koanf:"level"`
}

type Rules struct {
	// Path to a YAML overlay for the built-in extraction and scoring
	// rules. Empty means defaults only.
	Path string `koanf:"path"`
}

type Session struct {
	// TTL zero disables the idle-session sweeper.
	TTL           time.Duration `koanf:"ttl"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
}

type Anthropic struct {
	// APIKey empty means the canned stage-question responder.
	APIKey string `koanf:"api_key"`
	Model  string `koanf:"model"`
}

func Default() Config {
	return Config{
		Server:    Server{Port: 8750},
		Notify:    Notify{Subject: "leads.qualified"},
		Log:       Log{Level: "info"},
		Session:   Session{SweepInterval: 5 * time.Minute},
		Anthropic: Anthropic{Model: "claude-sonnet-4-20250514"},
	}
}

// Load builds the effective configuration. path names an optional YAML
// file; environment variables win over the file, which wins over
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return cfg, fmt.Errorf("loading environment: %w", err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// envKey maps LEADGEN_SERVER_PORT to server.port. Only the first
// underscore splits sections, so LEADGEN_SESSION_SWEEP_INTERVAL maps to
// session.sweep_interval.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(s, "_", ".", 1)
}
