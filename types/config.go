package types

// AppConfig represents the preferences loaded from config file
type AppConfig struct {
	ShowIcon      bool              `yaml:"showIcon"`
	StartAtLogin  bool              `yaml:"startAtLogin"`
	UploadURL     string            `yaml:"uploadURL"`
	UploadField   string            `yaml:"uploadField"`
	LinkPath      []string          `yaml:"linkPath"` // JSON path of the link in the host response, e.g. [data, link]
	UploadHeaders map[string]string `yaml:"uploadHeaders,omitempty"`
	RecentLimit   int               `yaml:"recentLimit"`
	NotifySocket  string            `yaml:"notifySocket,omitempty"`
	ApiPort       int               `yaml:"apiPort"`
}

// Config holds runtime overrides from CLI flags
type Config struct {
	Log             string
	UseConfigPath   string
	UseApiPort      int
	SkipApi         bool   // if true, do not start the local control API
	UseNotifierPath string // overrides the terminal-notifier path resolved from the runtime mode
	UseNotifySocket string
	SkipNotify      bool // if true, notifications are only logged
	UseUploadURL    string
}
