package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultsFileName is the optional repo-local defaults file.
const DefaultsFileName = ".cherrybot.yml"

// defaultsFile holds the subset of options a repository can pin as defaults.
// Environment and flag values take precedence over it.
type defaultsFile struct {
	Labels      []string `yaml:"labels,omitempty"`
	Draft       *bool    `yaml:"draft,omitempty"`
	AuthorName  string   `yaml:"authorName,omitempty"`
	AuthorEmail string   `yaml:"authorEmail,omitempty"`
	Remote      string   `yaml:"remote,omitempty"`
}

// applyDefaultsFile fills unset Config fields from .cherrybot.yml in the
// repository root. A missing file is not an error.
func applyDefaultsFile(cfg *Config, repoDir string) error {
	if repoDir == "" {
		repoDir = "."
	}

	data, err := os.ReadFile(filepath.Join(repoDir, DefaultsFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", DefaultsFileName, err)
	}

	var defaults defaultsFile
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return fmt.Errorf("failed to parse %s: %w", DefaultsFileName, err)
	}

	if len(cfg.Labels) == 0 {
		cfg.Labels = defaults.Labels
	}
	if !cfg.Draft && defaults.Draft != nil {
		cfg.Draft = *defaults.Draft
	}
	if cfg.AuthorName == "" {
		cfg.AuthorName = defaults.AuthorName
	}
	if cfg.AuthorEmail == "" {
		cfg.AuthorEmail = defaults.AuthorEmail
	}
	if cfg.Remote == "" {
		cfg.Remote = defaults.Remote
	}

	return nil
}
