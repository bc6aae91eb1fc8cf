package state

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/xewelus/obsidian-fm/internal/analyzer"
	"github.com/xewelus/obsidian-fm/internal/config"
	"github.com/xewelus/obsidian-fm/internal/constants"
	"github.com/xewelus/obsidian-fm/internal/frontmatter"
	"github.com/xewelus/obsidian-fm/internal/scanner"
)

// State carries the loaded configuration and wires the scan pipeline the
// commands share.
type State struct {
	Config *config.Config
	Home   string
}

func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	return &State{Config: cfg, Home: home}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}

	return config.Load(home)
}

// VaultDir resolves the active vault directory. The root command binds its
// --vault-path flag to the vaultdir viper key, so a flag override beats the
// configured value; flag parsing happens after state construction, which is
// why this resolves lazily.
func (s *State) VaultDir() string {
	if override := strings.TrimSpace(viper.GetString("vaultdir")); override != "" {
		return override
	}
	return s.Config.VaultDir
}

// Analyze runs the full ingestion pass: walk the vault, parse each note's
// frontmatter, and fold the records into a fresh index.
func (s *State) Analyze() (*analyzer.Analyzer, error) {
	sc, err := scanner.New(s.VaultDir(), s.Config.IgnoredFolders)
	if err != nil {
		return nil, err
	}

	a := analyzer.New()
	err = sc.Scan(func(path string) error {
		a.Ingest(path, frontmatter.Parse(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning vault %s: %w", s.VaultDir(), err)
	}

	return a, nil
}
