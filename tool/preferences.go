package tool

import (
	"fmt"
	"os/exec"
)

// Preferences is the preferences collaborator. Its window is the preferences
// file opened in the default text editor.
type Preferences struct {
	open func(path string) error
}

// NewPreferences opens the config file in the default text editor.
func NewPreferences() *Preferences {
	return &Preferences{
		open: func(path string) error {
			return exec.Command("open", "-t", path).Start()
		},
	}
}

// GetOption reads an effective config option by its yaml name.
func (p *Preferences) GetOption(name string) any {
	return GetOption(name)
}

// ShowWindow opens config.yaml for editing.
func (p *Preferences) ShowWindow() error {
	path := GetConfigPath()
	if err := p.open(path); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

// GetConfigPath returns the loaded preferences file, or the default location before LoadConfig.
func GetConfigPath() string {
	configMu.RLock()
	defer configMu.RUnlock()
	if ConfigPath == "" {
		return DefaultConfigPath()
	}
	return ConfigPath
}
