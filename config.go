package phishcheck

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is an analysis profile
type Config struct {
	Stemmer       string `yaml:"stemmer"`
	Concurrency   int    `yaml:"concurrency"`
	Template      string `yaml:"template,omitempty"`
	MaliciousOnly bool   `yaml:"malicious-only"`
}

// DefaultConfig is the profile used when none is given
var DefaultConfig = Config{
	Stemmer:     "suffix",
	Concurrency: 1,
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

// Apply copies profile values into options fields that are still unset
func (c *Config) Apply(opts *Options) {
	if opts.StemmerName == "" {
		opts.StemmerName = c.Stemmer
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = c.Concurrency
	}
	if opts.Template == "" {
		opts.Template = c.Template
	}
	if c.MaliciousOnly {
		opts.MaliciousOnly = true
	}
}
