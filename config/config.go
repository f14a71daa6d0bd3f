package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/k1LoW/errors"
)

var (
	homePath       string
	configHomePath string
	stateHomePath  string
)

// Config tunes the compilers. Zero values keep the built-in defaults.
type Config struct {
	// Maximum words per content slide
	MaxWords int `yaml:"maxWords,omitempty" json:"maxWords,omitempty"`
	// Maximum items per list slide
	MaxItems int `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	// A leading paragraph longer than this is not used as the title slide subheading
	SubtitleMaxWords int `yaml:"subtitleMaxWords,omitempty" json:"subtitleMaxWords,omitempty"`
	// A heading section with an image and fewer words than this becomes an image-text slide
	ImageTextMaxWords int `yaml:"imageTextMaxWords,omitempty" json:"imageTextMaxWords,omitempty"`
	// Domain used for the end slide URL ({username}.{domain})
	Domain string `yaml:"domain,omitempty" json:"domain,omitempty"`
	// Layout of case-study images without data-layout (full-width or content-width)
	ImageLayout string `yaml:"imageLayout,omitempty" json:"imageLayout,omitempty"`
	// Conditions applied to every body slide
	Defaults []DefaultCondition `yaml:"defaults,omitempty" json:"defaults,omitempty"`
}

type DefaultCondition struct {
	If     string `yaml:"if" json:"if"`                             // CEL condition to check
	Ignore *bool  `yaml:"ignore,omitempty" json:"ignore,omitempty"` // whether to drop the slide if condition is true
}

func init() {
	var err error
	homePath, err = os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}
}

// Load loads the configuration from the config file.
// It searches for config files in the following order:
// 1. $XDG_CONFIG_HOME/notedeck/config-{profile}.yml
// 2. $XDG_CONFIG_HOME/notedeck/config.yml
// If no config file is found, it returns an empty Config struct.
func Load(profile string) (_ *Config, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	var configBasePaths []string
	if profile != "" {
		configBasePaths = append(configBasePaths, filepath.Join(HomePath(), fmt.Sprintf("config-%s", profile)))
	}
	configBasePaths = append(configBasePaths, filepath.Join(HomePath(), "config"))
	cfg := &Config{}
	for _, basePath := range configBasePaths {
		for _, ext := range []string{".yml", ".yaml"} {
			configPath := basePath + ext
			if b, err := os.ReadFile(configPath); err == nil {
				if err := yaml.Unmarshal(b, cfg); err != nil {
					return nil, fmt.Errorf("failed to unmarshal config: %w", err)
				}
				return cfg, nil
			}
		}
	}
	// If no config file is found, return an empty config
	return cfg, nil
}

// HomePath returns the path to the configuration directory.
func HomePath() string {
	if configHomePath != "" {
		return configHomePath
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		configHomePath = filepath.Join(v, "notedeck")
	} else {
		configHomePath = filepath.Join(homePath, ".config", "notedeck")
	}
	return configHomePath
}

// StateHomePath returns the path to the state directory holding logs and error dumps.
func StateHomePath() string {
	if stateHomePath != "" {
		return stateHomePath
	}
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		stateHomePath = filepath.Join(v, "notedeck")
	} else {
		stateHomePath = filepath.Join(homePath, ".local", "state", "notedeck")
	}
	return stateHomePath
}
