package config

import "fmt"

type Config struct {
	Models  ModelsConfig  `yaml:"models"`
	Audio   AudioConfig   `yaml:"audio"`
	Poll    PollConfig    `yaml:"poll"`
	Retry   RetryConfig   `yaml:"retry"`
	Logging LoggingConfig `yaml:"logging"`
}

type ModelsConfig struct {
	Transcription string `yaml:"transcription"`
	Summarization string `yaml:"summarization"`
}

type AudioConfig struct {
	// MaxUploadBytes is the largest audio file the transcription API accepts
	// in one request. Files above it are chunked.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
	// ChunkSeconds is the fixed duration of each chunk.
	ChunkSeconds int `yaml:"chunk_seconds"`
}

type PollConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
}

type RetryConfig struct {
	MaxAttempts    int `yaml:"max_attempts"`
	InitialSeconds int `yaml:"initial_seconds"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Validate() error {
	if c.Audio.MaxUploadBytes < 0 {
		return fmt.Errorf("audio.max_upload_bytes must not be negative")
	}
	if c.Audio.ChunkSeconds < 0 {
		return fmt.Errorf("audio.chunk_seconds must not be negative")
	}

	if c.Models.Transcription == "" {
		c.Models.Transcription = "whisper-1"
	}
	if c.Models.Summarization == "" {
		c.Models.Summarization = "gemini-2.5-flash"
	}
	if c.Audio.MaxUploadBytes == 0 {
		c.Audio.MaxUploadBytes = 25 * 1024 * 1024
	}
	if c.Audio.ChunkSeconds == 0 {
		c.Audio.ChunkSeconds = 15 * 60
	}
	if c.Poll.IntervalSeconds == 0 {
		c.Poll.IntervalSeconds = 10
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = 5
	}
	if c.Retry.InitialSeconds == 0 {
		c.Retry.InitialSeconds = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
