package domain

import "time"

// ConfigFileName is the configuration file panelctl searches for, from the
// working directory upwards and finally in the user's config directory.
const ConfigFileName = "panelctl.yaml"

// DefaultTimeout bounds a single panel round trip when the configuration
// does not set one.
const DefaultTimeout = 30 * time.Second

// ClientConfig carries everything needed to reach the panel API.
type ClientConfig struct {
	// Endpoint is the base URL of the panel API, e.g. "https://panel.example.com/api".
	Endpoint string
	// Login is the account name all commands run against.
	Login string
	// Password authenticates the account.
	Password string
	// Timeout bounds a single round trip.
	Timeout time.Duration
}
