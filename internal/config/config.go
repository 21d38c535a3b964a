package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates the service configuration.
type Config struct {
	Server ServerConfig
	Agent  AgentConfig
}

// ServerConfig describes the HTTP server settings.
type ServerConfig struct {
	Addr          string
	AllowedOrigin string
}

// AgentConfig describes responder settings. ComboSeed pins the combo
// suggestion draw for demos and reproducible sessions; left unset, the
// process picks a time-based seed.
type AgentConfig struct {
	ComboSeed *int64
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	agent, err := loadAgentConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Agent: agent}, nil
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	addr := port
	if !strings.Contains(port, ":") {
		if strings.Contains(port, " ") {
			return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
		}
		addr = ":" + port
	}

	return ServerConfig{
		Addr:          addr,
		AllowedOrigin: getEnvOrDefault("CORS_ALLOWED_ORIGIN", "*"),
	}, nil
}

func loadAgentConfig() (AgentConfig, error) {
	seed, err := parseOptionalInt64Env("AGENT_COMBO_SEED")
	if err != nil {
		return AgentConfig{}, err
	}
	return AgentConfig{ComboSeed: seed}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalInt64Env(key string) (*int64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
