package config

import (
	"strconv"
	"strings"
)

const (
	DefaultLLMBaseURL = "https://api.groq.com/openai/v1/"
	DefaultLLMModel   = "llama3-8b-8192"
	DefaultSMTPHost   = "smtp-relay.brevo.com"
	DefaultSMTPPort   = 587
)

// Config holds all settings of the summarizer. It is built once at startup
// and handed to the components that need it.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	LLM     LLMConfig
	SMTP    SMTPConfig
	Prompts PromptsConfig
	Client  ClientConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string
}

// LLMConfig holds the chat-completion provider settings
type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// SMTPConfig holds the relay settings used for outbound mail
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// PromptsConfig holds the location of the optional preset file
type PromptsConfig struct {
	PresetsFile string
}

// ClientConfig holds settings of the command line frontend
type ClientConfig struct {
	APIURL string
}

// Load reads the given .env files and the environment into a Config. The
// Config is always usable; a non-nil error lists the files that were skipped.
func Load(files ...string) (*Config, error) {
	values, err := LoadEnv(files...)
	return FromMap(values), err
}

// FromMap builds a Config from raw key/value pairs, applying defaults
func FromMap(values map[string]string) *Config {
	get := func(key, def string) string {
		if v := strings.TrimSpace(values[key]); v != "" {
			return v
		}
		return def
	}

	username := get("BREVO_USER", "")

	origins := splitList(get("CORS_ALLOWED_ORIGINS", "*"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Server: ServerConfig{
			Port:               get("API_PORT", "8080"),
			CORSAllowedOrigins: origins,
		},
		Log: LogConfig{
			Level:  get("LOG_LEVEL", "info"),
			Format: get("LOG_FORMAT", "json"),
		},
		LLM: LLMConfig{
			APIKey:  get("GROQ_API_KEY", ""),
			BaseURL: get("GROQ_BASE_URL", DefaultLLMBaseURL),
			Model:   get("GROQ_MODEL", DefaultLLMModel),
		},
		SMTP: SMTPConfig{
			Host:     get("SMTP_HOST", DefaultSMTPHost),
			Port:     getInt(values, "SMTP_PORT", DefaultSMTPPort),
			Username: username,
			Password: get("BREVO_API_KEY", ""),
			From:     get("MAIL_FROM", username),
		},
		Prompts: PromptsConfig{
			PresetsFile: get("PROMPT_PRESETS_FILE", "prompts.yaml"),
		},
		Client: ClientConfig{
			APIURL: get("SUMMARIZER_API_URL", "http://localhost:8080"),
		},
	}
}

// getInt parses an integer value, falling back to def when unset or invalid
func getInt(values map[string]string, key string, def int) int {
	raw := strings.TrimSpace(values[key])
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
