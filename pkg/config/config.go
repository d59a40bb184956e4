package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Groq      GroqConfig
	Documents DocumentsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string `envconfig:"PORT" default:"8080"`
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// GroqConfig holds Groq API configuration. The API key is injected, never
// hard-coded; transcription and chat extraction share one credential.
type GroqConfig struct {
	APIKey          string        `envconfig:"GROQ_API_KEY"`
	BaseURL         string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	ChatModel       string        `envconfig:"GROQ_CHAT_MODEL" default:"llama-3.3-70b-versatile"`
	TranscribeModel string        `envconfig:"GROQ_TRANSCRIBE_MODEL" default:"whisper-large-v3"`
	CallTimeout     time.Duration `envconfig:"GROQ_CALL_TIMEOUT" default:"60s"`
}

// DocumentsConfig holds the filesystem locations the pipeline touches.
type DocumentsConfig struct {
	Dir     string `envconfig:"DOCUMENTS_DIR" default:"./documents"`
	TempDir string `envconfig:"UPLOAD_TEMP_DIR" default:""`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Groq.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
	}
	if c.Documents.Dir == "" {
		return fmt.Errorf("DOCUMENTS_DIR must not be empty")
	}
	return nil
}

// GetServerAddr returns the host:port address the server listens on
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
