package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Client configures the blogctl command line client.
type Client struct {
	APIURL      string
	SessionFile string
	Logging     Logging
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".blogctl-session.yaml"
	}
	return filepath.Join(dir, "blogctl", "session.yaml")
}

func LoadClient() Client {
	// a missing .env is normal for the client
	_ = godotenv.Load()

	return Client{
		APIURL:      getEnv("BLOG_API_URL", "http://localhost:8080"),
		SessionFile: getEnv("BLOG_SESSION_FILE", defaultSessionFile()),
		Logging: Logging{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "warn")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
	}
}
