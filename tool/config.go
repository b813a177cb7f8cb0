package tool

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/moyoez/katana/types"
)

const (
	DefaultApiPort     = 53318
	DefaultRecentLimit = 5
	DefaultUploadField = "image"
)

var (
	ConfigPath    = ""            // resolved by LoadConfig, defaults to <UserConfigDir>/Katana/config.yaml
	CurrentConfig types.AppConfig // file values only
	flagOverrides types.Config
	configMu      sync.RWMutex
)

func defaultConfig() types.AppConfig {
	return types.AppConfig{
		ShowIcon:     false, // menu-bar only unless the user asks for a Dock icon
		StartAtLogin: false,
		UploadURL:    "https://api.imgur.com/3/image",
		UploadField:  DefaultUploadField,
		LinkPath:     []string{"data", "link"},
		RecentLimit:  DefaultRecentLimit,
		ApiPort:      DefaultApiPort,
	}
}

// DefaultConfigPath returns <UserConfigDir>/Katana/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(AppHomeDir(), "config.yaml")
}

// LoadConfig reads the preferences file, writing defaults when it does not exist yet.
func LoadConfig(path string) (types.AppConfig, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	cfg := defaultConfig()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			if writeErr := writeConfig(path, cfg); writeErr != nil {
				return cfg, fmt.Errorf("config file not found, and failed to generate default config: %w", writeErr)
			}
			DefaultLogger.Infof("Created new preferences file at %s", path)
			setCurrentConfig(path, cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config file path is a directory: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.UploadField == "" {
		cfg.UploadField = DefaultUploadField
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = DefaultRecentLimit
	}
	if cfg.ApiPort <= 0 {
		cfg.ApiPort = DefaultApiPort
	}

	setCurrentConfig(path, cfg)
	return cfg, nil
}

// ApplyFlagOverrides merges CLI overrides into cfg and remembers them for GetEffectiveConfig.
// CurrentConfig keeps the file values, so overrides are never persisted.
func ApplyFlagOverrides(cfg *types.AppConfig, flags types.Config) {
	applyOverrides(cfg, flags)
	SetFlagOverrides(flags)
}

func applyOverrides(cfg *types.AppConfig, flags types.Config) {
	if flags.UseApiPort > 0 {
		cfg.ApiPort = flags.UseApiPort
	}
	if flags.UseNotifySocket != "" {
		cfg.NotifySocket = flags.UseNotifySocket
	}
	if flags.UseUploadURL != "" {
		cfg.UploadURL = flags.UseUploadURL
	}
}

// SetFlagOverrides stores the current CLI flag config for GetEffectiveConfig to merge.
func SetFlagOverrides(c types.Config) {
	configMu.Lock()
	defer configMu.Unlock()
	flagOverrides = c
}

// GetFlagOverrides returns a copy of the flag overrides.
func GetFlagOverrides() types.Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return flagOverrides
}

func setCurrentConfig(path string, cfg types.AppConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	ConfigPath = path
	CurrentConfig = cfg
}

func writeConfig(path string, cfg types.AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// GetCurrentConfig returns the preferences as stored in the file, without flag overrides.
func GetCurrentConfig() types.AppConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return CurrentConfig
}

// GetEffectiveConfig returns the preferences the process runs with.
func GetEffectiveConfig() types.AppConfig {
	configMu.RLock()
	cfg := CurrentConfig
	flags := flagOverrides
	configMu.RUnlock()
	applyOverrides(&cfg, flags)
	return cfg
}

// GetOption returns a preference by its yaml key, or nil when the key is unknown.
func GetOption(name string) any {
	cfg := GetEffectiveConfig()
	switch name {
	case "showIcon":
		return cfg.ShowIcon
	case "startAtLogin":
		return cfg.StartAtLogin
	case "uploadURL":
		return cfg.UploadURL
	case "uploadField":
		return cfg.UploadField
	case "linkPath":
		return cfg.LinkPath
	case "recentLimit":
		return cfg.RecentLimit
	case "notifySocket":
		return cfg.NotifySocket
	case "apiPort":
		return cfg.ApiPort
	}
	return nil
}

// GetBoolOption is GetOption for boolean preferences; unknown keys read as false.
func GetBoolOption(name string) bool {
	v, _ := GetOption(name).(bool)
	return v
}

// PersistAppConfig updates in-memory preferences and writes the config file.
// cfg must come from GetCurrentConfig, not GetEffectiveConfig.
func PersistAppConfig(cfg types.AppConfig) {
	configMu.Lock()
	CurrentConfig = cfg
	path := ConfigPath
	configMu.Unlock()
	if path == "" {
		path = DefaultConfigPath()
	}
	if err := writeConfig(path, cfg); err != nil {
		DefaultLogger.Warnf("Failed to persist config: %v", err)
	}
}
