package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "negative max upload bytes",
			config: Config{
				Audio: AudioConfig{MaxUploadBytes: -1},
			},
			wantErr: true,
		},
		{
			name: "negative chunk seconds",
			config: Config{
				Audio: AudioConfig{ChunkSeconds: -10},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Models.Transcription != "whisper-1" {
		t.Errorf("Transcription = %v, want whisper-1", cfg.Models.Transcription)
	}
	if cfg.Models.Summarization != "gemini-2.5-flash" {
		t.Errorf("Summarization = %v, want gemini-2.5-flash", cfg.Models.Summarization)
	}
	if cfg.Audio.MaxUploadBytes != 25*1024*1024 {
		t.Errorf("MaxUploadBytes = %v, want 25MiB", cfg.Audio.MaxUploadBytes)
	}
	if cfg.Audio.ChunkSeconds != 900 {
		t.Errorf("ChunkSeconds = %v, want 900", cfg.Audio.ChunkSeconds)
	}
	if cfg.Poll.IntervalSeconds != 10 {
		t.Errorf("IntervalSeconds = %v, want 10", cfg.Poll.IntervalSeconds)
	}
	if cfg.Retry.MaxAttempts != 5 {
		t.Errorf("MaxAttempts = %v, want 5", cfg.Retry.MaxAttempts)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
models:
  transcription: "whisper-1"
  summarization: "gemini-2.5-flash"

audio:
  max_upload_bytes: 1048576
  chunk_seconds: 600

poll:
  interval_seconds: 30

logging:
  level: "debug"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Audio.MaxUploadBytes != 1048576 {
		t.Errorf("MaxUploadBytes = %v, want %v", cfg.Audio.MaxUploadBytes, 1048576)
	}

	if cfg.Poll.IntervalSeconds != 30 {
		t.Errorf("IntervalSeconds = %v, want %v", cfg.Poll.IntervalSeconds, 30)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %v, want debug", cfg.Logging.Level)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Models.Transcription != "whisper-1" {
		t.Errorf("Transcription = %v, want whisper-1", cfg.Models.Transcription)
	}
	if cfg.Poll.IntervalSeconds != 10 {
		t.Errorf("IntervalSeconds = %v, want 10", cfg.Poll.IntervalSeconds)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.WriteString("models: [not, a, mapping"); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(tmpfile.Name()); err == nil {
		t.Error("Load() should return error for malformed yaml")
	}
}
