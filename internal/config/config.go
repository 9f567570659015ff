// Package config manages jot's persisted files: user preferences in
// config.json and the tab-ring state in state.json, both under the app
// directory (~/.jot by default; JOT_CONFIG_DIR overrides it).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jotkit/jot/internal/errors"
)

// EnvConfigDir names the environment variable that overrides the app
// directory, used by tests and the demo executor.
const EnvConfigDir = "JOT_CONFIG_DIR"

const (
	// DefaultAutosaveDelayMS is the debounce applied between a state
	// change and the write to disk. Zero means save immediately.
	DefaultAutosaveDelayMS = 750
	// MaxAutosaveDelayMS bounds the configurable debounce.
	MaxAutosaveDelayMS = 10000
)

// Config holds the application configuration
type Config struct {
	Theme           string `json:"theme,omitempty"`            // UI theme name (e.g., "dark-purple", "nord")
	ConfirmQuit     bool   `json:"confirm_quit,omitempty"`     // Ask before quitting
	ShowTabNumbers  bool   `json:"show_tab_numbers,omitempty"` // Numeric prefixes in the tab bar
	DebugLogging    bool   `json:"debug_logging,omitempty"`    // Log at debug level
	AutosaveDelayMS int    `json:"autosave_delay_ms"`          // Debounce for state writes, 0 = immediate

	mu       sync.RWMutex
	filePath string
}

// Dir returns the path to the app directory.
func Dir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".jot"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LogPath returns the path to the log file inside the app directory.
func LogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "jot.log"), nil
}

// Load reads the config from disk, or returns one with defaults if it
// doesn't exist. Fields absent from the file keep their defaults, so a
// config written by an older build stays valid.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AutosaveDelayMS: DefaultAutosaveDelayMS,
		filePath:        path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.AutosaveDelayMS < 0 {
		return errors.ConfigInvalid("autosave delay cannot be negative")
	}
	if c.AutosaveDelayMS > MaxAutosaveDelayMS {
		return errors.ConfigInvalid(fmt.Sprintf("autosave delay cannot exceed %dms", MaxAutosaveDelayMS))
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir, err := Dir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetConfirmQuit returns whether quitting asks for confirmation
func (c *Config) GetConfirmQuit() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ConfirmQuit
}

// SetConfirmQuit sets whether quitting asks for confirmation
func (c *Config) SetConfirmQuit(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ConfirmQuit = enabled
}

// GetShowTabNumbers returns whether the tab bar shows numeric prefixes
func (c *Config) GetShowTabNumbers() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ShowTabNumbers
}

// SetShowTabNumbers sets whether the tab bar shows numeric prefixes
func (c *Config) SetShowTabNumbers(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ShowTabNumbers = enabled
}

// GetDebugLogging returns whether debug logging is enabled
func (c *Config) GetDebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DebugLogging
}

// SetDebugLogging sets whether debug logging is enabled
func (c *Config) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DebugLogging = enabled
}

// GetAutosaveDelay returns the autosave debounce as a duration.
func (c *Config) GetAutosaveDelay() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.AutosaveDelayMS) * time.Millisecond
}

// SetAutosaveDelayMS sets the autosave debounce in milliseconds.
func (c *Config) SetAutosaveDelayMS(ms int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.AutosaveDelayMS = ms
}
