package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Output        string `yaml:"output"`
	Interactive   bool   `yaml:"interactive"`
	BookmarksOnly bool   `yaml:"bookmarks_only"`
	DebugLevel    int    `yaml:"debug_level"`
}

// Load loads configuration from multiple sources with precedence:
// 1. Environment variables
// 2. ./.env.local (dotenv) - walks up parent directories to find it
// 3. ~/.config/bmmerge/config.yaml (YAML)
func Load() (*Config, error) {
	cfg := &Config{
		BookmarksOnly: true,
	}

	// Load .env.local if it exists (walking up parent directories)
	if envPath := findEnvLocal(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	// YAML config is optional, so a missing file is fine
	_ = loadYAMLConfig(cfg)

	// Override with environment variables
	if out := os.Getenv("BMMERGE_OUT"); out != "" {
		cfg.Output = out
	}
	if v, ok := envBool("BMMERGE_INTERACTIVE"); ok {
		cfg.Interactive = v
	}
	if v, ok := envBool("BMMERGE_BOOKMARKS_ONLY"); ok {
		cfg.BookmarksOnly = v
	}
	if lvl := os.Getenv("BMMERGE_DEBUG"); lvl != "" {
		if n, err := strconv.Atoi(lvl); err == nil {
			cfg.DebugLevel = n
		}
	}

	return cfg, nil
}

// loadYAMLConfig loads configuration from ~/.config/bmmerge/config.yaml
func loadYAMLConfig(cfg *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(homeDir, ".config", "bmmerge", "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func envBool(envVar string) (bool, bool) {
	raw := os.Getenv(envVar)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// findEnvLocal searches for .env.local starting from cwd and walking up
// parent directories. Stops at the user's home directory.
// Returns the path to .env.local if found, empty string otherwise.
func findEnvLocal() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// If we can't get home dir, just check cwd
		if _, err := os.Stat(".env.local"); err == nil {
			return ".env.local"
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Clean paths for reliable comparison
	homeDir = filepath.Clean(homeDir)
	dir := filepath.Clean(cwd)

	for {
		envPath := filepath.Join(dir, ".env.local")
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}

		// Stop if we've reached home directory
		if dir == homeDir {
			break
		}

		// Get parent directory
		parent := filepath.Dir(dir)

		// Stop if we've reached the filesystem root
		if parent == dir {
			break
		}

		dir = parent
	}

	return ""
}
