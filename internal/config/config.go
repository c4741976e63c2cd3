// Package config seeds and inspects the lm configuration files.
//
// Seeding is write-once: a missing file receives the bundled template
// verbatim, an existing file is never touched. The launcher itself never
// acts on the values; parsing exists for validation and status display.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name in every scope.
const FileName = ".lmprep.yml"

// Scope identifies where a configuration file lives.
type Scope int

const (
	// ScopeGlobal is the per-user file in the home directory.
	ScopeGlobal Scope = iota
	// ScopeLocal is the per-project file in the working directory.
	ScopeLocal
)

func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeLocal:
		return "local"
	default:
		return "unknown"
	}
}

// IOError reports a failed configuration write.
type IOError struct {
	Scope Scope
	Path  string
	Err   error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not create %s configuration %s: %v", e.Scope, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Seed pairs a scope with its resolved destination path.
type Seed struct {
	Scope Scope
	Path  string
}

// DefaultSeeds resolves the standard destinations: $HOME/.lmprep.yml and
// ./.lmprep.yml, in bootstrap order. A failed lookup is not an IOError;
// that kind is reserved for writes against a known path.
func DefaultSeeds() ([]Seed, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not locate home directory: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("could not determine working directory: %w", err)
	}
	return []Seed{
		{Scope: ScopeGlobal, Path: filepath.Join(home, FileName)},
		{Scope: ScopeLocal, Path: filepath.Join(cwd, FileName)},
	}, nil
}

// Settings is the parsed form of a configuration file.
type Settings struct {
	AllowedExtensions  []string `yaml:"allowed_extensions"`
	Delimiter          string   `yaml:"delimiter"`
	Subfolder          string   `yaml:"subfolder"`
	Zip                bool     `yaml:"zip"`
	Tree               bool     `yaml:"tree"`
	IgnoredDirectories []string `yaml:"ignored_directories"`
	RespectGitignore   *bool    `yaml:"respect_gitignore"` // pointer to distinguish unset from false
}

// Parse decodes configuration bytes.
func Parse(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse configuration: %w", err)
	}
	return s, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	return Parse(data)
}
