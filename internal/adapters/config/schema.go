package config

// File represents the structure of the panelctl.yaml configuration file.
type File struct {
	Endpoint string `yaml:"endpoint"`
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	// TimeoutSeconds bounds a single panel round trip. Zero means the
	// built-in default.
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}
