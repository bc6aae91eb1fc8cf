package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultIgnoredFolders lists the directories a vault scan never descends
// into. Leading-dot folders are skipped unconditionally; this set exists for
// the non-hidden ones and to keep the hidden defaults visible in config.
var DefaultIgnoredFolders = []string{
	".obsidian",
	".trash",
	".git",
	"node_modules",
}

type Config struct {
	VaultDir       string   `yaml:"vaultdir"        json:"vault_dir"`
	IgnoredFolders []string `yaml:"ignored_folders" json:"ignored_folders"`
}

// Load reads the config file under the user's home directory. A missing or
// empty file yields a config populated with defaults.
func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	cfg.ensureDefaults(home)
	return cfg, nil
}

func (cfg *Config) ensureDefaults(home string) {
	if strings.TrimSpace(cfg.VaultDir) == "" {
		cfg.VaultDir = filepath.Join(home, "Documents", "Obsidian")
	}
	if cfg.IgnoredFolders == nil {
		cfg.IgnoredFolders = append([]string(nil), DefaultIgnoredFolders...)
	}
}
