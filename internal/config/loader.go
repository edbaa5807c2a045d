package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// ProfileLocal and ProfileOnline select config/readability.<profile>.yaml.
	ProfileLocal  = "local"
	ProfileOnline = "online"

	defaultReadabilityDir = "config"
)

// Load reads the application configuration from a YAML file and environment
// variables. Priority: ENV > YAML > defaults (via env-default tags).
// The YAML path comes from CONFIG_PATH (fallback "./config.yaml"). A missing
// fallback file is not an error; a missing explicit path is.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Profile returns the readability profile named by READABILITY_PROFILE.
// Unknown or empty values fall back to ProfileLocal.
func Profile() string {
	return normalizeProfile(os.Getenv("READABILITY_PROFILE"))
}

func normalizeProfile(p string) string {
	p = strings.ToLower(strings.TrimSpace(p))
	if p != ProfileLocal && p != ProfileOnline {
		return ProfileLocal
	}
	return p
}

// ReadabilityPath returns the readability config file for profile, rooted at
// READABILITY_CONFIG_DIR (fallback "config").
func ReadabilityPath(profile string) string {
	return ReadabilityPathIn(os.Getenv("READABILITY_CONFIG_DIR"), profile)
}

// ReadabilityPathIn returns the readability config file for profile inside
// dir. An empty dir means "config".
func ReadabilityPathIn(dir, profile string) string {
	if dir == "" {
		dir = defaultReadabilityDir
	}
	return filepath.Join(dir, fmt.Sprintf("readability.%s.yaml", normalizeProfile(profile)))
}

// LoadReadability loads the readability thresholds for the active profile.
// Unlike Load, the file is mandatory: the engine never runs on defaults alone.
func LoadReadability() (*ReadabilityConfig, error) {
	return LoadReadabilityFile(ReadabilityPath(Profile()))
}

// LoadReadabilityFile loads and validates readability thresholds from path.
// A missing file yields an error wrapping fs.ErrNotExist; any invalid field
// yields an error wrapping ErrInvalid.
func LoadReadabilityFile(path string) (*ReadabilityConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: readability file %s (set READABILITY_PROFILE=local|online): %w", path, err)
	}

	cfg := DefaultReadabilityConfig()
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid readability config at %s: %w", path, err)
	}

	return &cfg, nil
}
