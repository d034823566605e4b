package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the profile picked up from the working directory when no
// --config flag is given.
const DefaultPath = "jrnlvw.yaml"

// Options is the invocation configuration of one run. It is read from an
// optional jrnlvw.yaml profile and overridden by command-line flags.
type Options struct {
	Version   int      `yaml:"version"    json:"version"`
	Logfile   string   `yaml:"-"          json:"-"`
	ListBoots bool     `yaml:"list_boots" json:"list_boots,omitempty"`
	Kernel    bool     `yaml:"kernel"     json:"kernel,omitempty"`
	Boots     []string `yaml:"boots"      json:"boots,omitempty"`
	Units     []string `yaml:"units"      json:"units,omitempty"`
	Output    string   `yaml:"output"     json:"output,omitempty"`
	Color     bool     `yaml:"color"      json:"color,omitempty"`

	// Priority is a level 0-7 or a syslog level name.
	Priority string `yaml:"priority" json:"priority,omitempty"`

	// Number caps the records printed per boot; 0 prints all.
	Number int `yaml:"number" json:"number,omitempty"`

	// Time-of-day bounds (HH:MM[:SS]) and calendar bounds (YYYY-MM-DD), UTC.
	SinceTime string `yaml:"since_time" json:"since_time,omitempty"`
	UntilTime string `yaml:"until_time" json:"until_time,omitempty"`
	SinceDate string `yaml:"since_date" json:"since_date,omitempty"`
	UntilDate string `yaml:"until_date" json:"until_date,omitempty"`
}

// Default returns the options used when no profile exists.
func Default() *Options {
	return &Options{Version: 1, Priority: "7", Output: "table"}
}

// Parse decodes a YAML profile on top of the defaults.
func Parse(data []byte) (*Options, error) {
	o := Default()
	if err := yaml.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return o, nil
}

// Load reads the profile at path.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOrDefault loads path, falling back to Default when path is the
// implicit DefaultPath and does not exist.
func LoadOrDefault(path string) (*Options, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	o, err := Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return o, nil
}
