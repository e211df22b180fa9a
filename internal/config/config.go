// Package config manages persistent treepath settings in JSON files. Settings
// are named "section.key"; each section is a top-level object in the file
// holding string values. Display preferences live in a per-user global file,
// tree preferences in a per-project file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// ProjectFile is the name of the project settings file.
const ProjectFile = ".treepath"

// globalKeys are stored in the global file and shared by all projects.
var globalKeys = map[string]bool{
	"display.color": true,
}

// store is one JSON settings file.
type store struct {
	path     string
	sections map[string]map[string]string
}

func (s *store) load() error {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content, &s.sections); err != nil {
		return err
	}
	if s.sections == nil {
		s.sections = make(map[string]map[string]string)
	}
	return nil
}

func (s *store) save() error {
	content, err := json.MarshalIndent(s.sections, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Config reads and writes settings, routing each key to the global or the
// project file.
type Config struct {
	global  *store
	project *store
}

// New loads the global file ($XDG_CONFIG_HOME/treepath/config.json, or the
// platform equivalent) and, when projectDir is not empty, the .treepath file
// in projectDir. Missing files are treated as empty.
func New(projectDir string) (*Config, error) {
	globalDir, err := globalConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine global config path: %w", err)
	}

	c := &Config{
		global: &store{
			path:     filepath.Join(globalDir, "config.json"),
			sections: make(map[string]map[string]string),
		},
		project: &store{
			path:     filepath.Join(projectDir, ProjectFile),
			sections: make(map[string]map[string]string),
		},
	}

	if err := c.global.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load global config: %w", err)
	}

	if projectDir != "" {
		if err := c.project.load(); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load project config: %w", err)
		}
	}

	return c, nil
}

func (c *Config) storeFor(key string) *store {
	if globalKeys[key] {
		return c.global
	}
	return c.project
}

// Has reports whether key is set.
func (c *Config) Has(key string) bool {
	_, ok := c.Lookup(key)
	return ok
}

// Lookup returns the value of key and whether it is set.
func (c *Config) Lookup(key string) (string, bool) {
	section, subKey := splitKey(key)
	value, ok := c.storeFor(key).sections[section][subKey]
	return value, ok
}

// Get returns the value of key, or "" when it is not set.
func (c *Config) Get(key string) string {
	value, _ := c.Lookup(key)
	return value
}

// GetOr returns the value of key, or def when it is not set.
func (c *Config) GetOr(key, def string) string {
	if value, ok := c.Lookup(key); ok {
		return value
	}
	return def
}

// Set stores a value and saves the file it belongs to.
func (c *Config) Set(key, value string) error {
	section, subKey := splitKey(key)
	s := c.storeFor(key)
	if _, exists := s.sections[section]; !exists {
		s.sections[section] = make(map[string]string)
	}
	s.sections[section][subKey] = value
	return s.save()
}

// Delete removes a value and saves the file it belongs to.
func (c *Config) Delete(key string) error {
	section, subKey := splitKey(key)
	s := c.storeFor(key)
	if sectionData, exists := s.sections[section]; exists {
		delete(sectionData, subKey)
		if len(sectionData) == 0 {
			delete(s.sections, section)
		}
	}
	return s.save()
}

// GetAllKeys returns every set key, sorted.
func (c *Config) GetAllKeys() []string {
	var keys []string
	for _, s := range []*store{c.global, c.project} {
		for section, sectionData := range s.sections {
			for subKey := range sectionData {
				keys = append(keys, section+"."+subKey)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// IsGlobalKey reports whether key is stored in the global file.
func (c *Config) IsGlobalKey(key string) bool {
	return globalKeys[key]
}

// MARK: Internal helper functions

func splitKey(key string) (section, subKey string) {
	parts := strings.SplitN(key, ".", 2)
	if len(parts) != 2 {
		return "", key
	}
	return parts[0], parts[1]
}

func globalConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "darwin", "linux", "freebsd", "openbsd", "netbsd":
		if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
			configDir = xdgHome
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}

	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			return "", fmt.Errorf("APPDATA environment variable not set")
		}

	default:
		return "", fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return filepath.Join(configDir, "treepath"), nil
}
