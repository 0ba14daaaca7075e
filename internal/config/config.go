package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	GCS      GCSConfig      `yaml:"gcs"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Speech   SpeechConfig   `yaml:"speech"`
	TTS      TTSConfig      `yaml:"tts"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Paths    PathsConfig    `yaml:"paths"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port               int `yaml:"port"`
	ShutdownTimeoutSec int `yaml:"shutdown_timeout_sec"`
}

type GCSConfig struct {
	Bucket string `yaml:"bucket"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type SpeechConfig struct {
	Language string `yaml:"language"`
}

type TTSConfig struct {
	Language string `yaml:"language"`
	Voice    string `yaml:"voice"`
}

type PipelineConfig struct {
	MaxRetries     int `yaml:"max_retries"`
	RetryDelayMS   int `yaml:"retry_delay_ms"`
	GraceWindowSec int `yaml:"grace_window_sec"`
}

type PathsConfig struct {
	// Watch enables the drop-folder intake when set: video files created in
	// this directory are submitted to the audio pipeline automatically.
	Watch string `yaml:"watch"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads and validates a YAML config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.GCS.Bucket == "" {
		return fmt.Errorf("gcs.bucket is required")
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required")
	}

	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ShutdownTimeoutSec == 0 {
		c.Server.ShutdownTimeoutSec = 10
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Speech.Language == "" {
		c.Speech.Language = "en-US"
	}
	if c.TTS.Language == "" {
		c.TTS.Language = "en-US"
	}
	if c.Pipeline.MaxRetries == 0 {
		c.Pipeline.MaxRetries = 5
	}
	if c.Pipeline.RetryDelayMS == 0 {
		c.Pipeline.RetryDelayMS = 1000
	}
	if c.Pipeline.GraceWindowSec == 0 {
		c.Pipeline.GraceWindowSec = 5
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// ShutdownTimeout returns the graceful shutdown budget as a duration.
func (c *ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

// RetryDelay returns the initial retry backoff as a duration.
func (c *PipelineConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMS) * time.Millisecond
}

// GraceWindow returns the post-terminal poll grace window as a duration.
func (c *PipelineConfig) GraceWindow() time.Duration {
	return time.Duration(c.GraceWindowSec) * time.Second
}
