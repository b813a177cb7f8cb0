package tool

import (
	"flag"
	"os"

	"github.com/moyoez/katana/types"
)

// SetFlags parses CLI flags and returns the override config.
func SetFlags() types.Config {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) types.Config {
	var cfg types.Config
	fs.StringVar(&cfg.Log, "log", "", "log mode: dev|prod|none")
	fs.StringVar(&cfg.UseConfigPath, "useConfigPath", "", "override preferences file path")
	fs.IntVar(&cfg.UseApiPort, "useApiPort", 0, "override local control API port")
	fs.BoolVar(&cfg.SkipApi, "skipApi", false, "do not start the local control API")
	fs.StringVar(&cfg.UseNotifierPath, "useNotifierPath", "", "override terminal-notifier binary path")
	fs.StringVar(&cfg.UseNotifySocket, "useNotifySocket", "", "deliver notifications to this Unix socket first")
	fs.BoolVar(&cfg.SkipNotify, "skipNotify", false, "only log notifications, never show them")
	fs.StringVar(&cfg.UseUploadURL, "useUploadURL", "", "override upload endpoint")
	_ = fs.Parse(args)
	return cfg
}
