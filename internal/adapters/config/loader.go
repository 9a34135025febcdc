// Package config provides the configuration loader for panelctl.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"time"

	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file values. PANELCTL_PASSWORD is the
// usual way to keep the credential out of the file.
const (
	envEndpoint = "PANELCTL_ENDPOINT"
	envLogin    = "PANELCTL_LOGIN"
	envPassword = "PANELCTL_PASSWORD"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load locates panelctl.yaml starting at cwd and walking towards the
// filesystem root, falling back to the user config directory. Environment
// variables override file values; a configuration built entirely from the
// environment needs no file at all.
func (l *Loader) Load(cwd string) (*domain.ClientConfig, error) {
	var file File

	path, found := l.findConfiguration(cwd)
	if found {
		if err := readAndUnmarshalYAML(path, &file); err != nil {
			return nil, err
		}
	}

	cfg := &domain.ClientConfig{
		Endpoint: file.Endpoint,
		Login:    file.Login,
		Password: file.Password,
		Timeout:  time.Duration(file.TimeoutSeconds) * time.Second,
	}
	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		if !found {
			return nil, zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
		}
		return nil, zerr.With(err, "path", path)
	}

	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		candidate := filepath.Join(configDir, "panelctl", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func applyEnvOverrides(cfg *domain.ClientConfig) {
	if v := os.Getenv(envEndpoint); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv(envLogin); v != "" {
		cfg.Login = v
	}
	if v := os.Getenv(envPassword); v != "" {
		cfg.Password = v
	}
}

func validate(cfg *domain.ClientConfig) error {
	if cfg.Endpoint == "" {
		return zerr.With(domain.ErrConfigInvalid, "missing", "endpoint")
	}

	u, err := url.Parse(cfg.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return zerr.With(domain.ErrConfigInvalid, "endpoint", cfg.Endpoint)
	}

	if cfg.Login == "" {
		return zerr.With(domain.ErrConfigInvalid, "missing", "login")
	}

	return nil
}

func readAndUnmarshalYAML(path string, out *File) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(domain.ErrConfigReadFailed, "path", path)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.With(zerr.With(domain.ErrConfigParseFailed, "path", path), "error", err.Error())
	}

	return nil
}
