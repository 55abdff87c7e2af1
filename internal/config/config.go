package config

import (
	"fmt"
	"os"
	"path/filepath"

	"glance/pkg/types"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the client configuration. The theme name is the
// only field the application writes back; everything else is edited
// by hand.
type Config struct {
	Server struct {
		URL         string `yaml:"url"`          // Base URL of the gallery backend
		TrashFolder string `yaml:"trash_folder"` // Reserved trash folder name
	} `yaml:"server"`
	Slideshow struct {
		DelayMS int `yaml:"delay_ms"` // Advance delay for still images
	} `yaml:"slideshow"`
	Lightbox struct {
		FadeMS int `yaml:"fade_ms"` // Fade-out duration on media swap
	} `yaml:"lightbox"`
	Theme struct {
		Name string `yaml:"name"` // "dark" or "light"; persisted preference
	} `yaml:"theme"`
	Upload struct {
		Include []string `yaml:"include"` // Glob patterns accepted by upload/watch
	} `yaml:"upload"`

	path string // file this config was loaded from, for Save
}

// DefaultDir returns the configuration directory
// (~/.config/glance).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "glance"), nil
}

// LoadConfig loads configuration from the default location
// (~/.config/glance/config.yaml).
func LoadConfig() (*Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(filepath.Join(dir, "config.yaml"))
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if tempCfg.Server.URL != "" {
		cfg.Server.URL = tempCfg.Server.URL
	}
	if tempCfg.Server.TrashFolder != "" {
		cfg.Server.TrashFolder = tempCfg.Server.TrashFolder
	}
	if tempCfg.Slideshow.DelayMS > 0 {
		cfg.Slideshow.DelayMS = tempCfg.Slideshow.DelayMS
	}
	if tempCfg.Lightbox.FadeMS > 0 {
		cfg.Lightbox.FadeMS = tempCfg.Lightbox.FadeMS
	}
	if tempCfg.Theme.Name != "" {
		cfg.Theme.Name = tempCfg.Theme.Name
	}
	if len(tempCfg.Upload.Include) > 0 {
		cfg.Upload.Include = tempCfg.Upload.Include
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.URL = "http://localhost:8000"
	cfg.Server.TrashFolder = types.TrashFolderName
	cfg.Slideshow.DelayMS = 5000
	cfg.Lightbox.FadeMS = 800
	cfg.Theme.Name = "dark"
	cfg.Upload.Include = nil
	return cfg
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.URL == "" {
		return fmt.Errorf("server.url must not be empty")
	}
	if c.Server.TrashFolder == "" {
		return fmt.Errorf("server.trash_folder must not be empty")
	}
	if c.Theme.Name != "dark" && c.Theme.Name != "light" {
		return fmt.Errorf("theme.name must be \"dark\" or \"light\", got %q", c.Theme.Name)
	}
	if c.Slideshow.DelayMS <= 0 {
		return fmt.Errorf("slideshow.delay_ms must be positive")
	}
	if c.Lightbox.FadeMS <= 0 {
		return fmt.Errorf("lightbox.fade_ms must be positive")
	}
	for _, pattern := range c.Upload.Include {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("upload.include pattern %q: %w", pattern, err)
		}
	}
	return nil
}

// IncludeGlobs compiles the upload include patterns. An empty list
// means everything is included.
func (c *Config) IncludeGlobs() ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(c.Upload.Include))
	for _, pattern := range c.Upload.Include {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("upload.include pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// SetTheme updates the theme preference and persists it.
func (c *Config) SetTheme(name string) error {
	c.Theme.Name = name
	if err := c.Validate(); err != nil {
		return err
	}
	return c.Save()
}

// Save writes the configuration back to the file it was loaded from.
func (c *Config) Save() error {
	if c.path == "" {
		dir, err := DefaultDir()
		if err != nil {
			return err
		}
		c.path = filepath.Join(dir, "config.yaml")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}
	return os.WriteFile(c.path, data, 0o644)
}
