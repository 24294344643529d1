package kissconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/kisslang/kiss/configs"
	"github.com/kisslang/kiss/logs"
)

//go:embed schema.cue
var Schema string

var configFileNames = []string{
	"kiss.cue",
	".kiss.cue",
}

// ConfigsLoader reads kiss.cue files from the working directory, the user
// config directory and /etc, in that order of precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	var paths []string
	for _, dir := range dirs {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config files", "paths", paths)
	}

	return configs.NewLoader(paths, Schema)
}
