package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	Token       string
	SessionFile string
	LobbyURL    string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("CASINOHUB_SERVER", "http://localhost:3001"),
		Token:       os.Getenv("CASINOHUB_TOKEN"),
		SessionFile: getEnvOrDefault("CASINOHUB_SESSION_FILE", defaultSessionFile()),
		LobbyURL:    os.Getenv("CASINOHUB_LOBBY_URL"),
		Output:      "text",
		Verbose:     false,
	}
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".casinohub/session.json"
	}
	return filepath.Join(home, ".casinohub", "session.json")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
