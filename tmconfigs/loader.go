package tmconfigs

import (
	_ "embed"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/reusee/tm/configs"
	"github.com/reusee/tm/logs"
)

//go:embed schema.cue
var schema string

var fileNames = []string{
	"tm.cue",
	".tm.cue",
}

// ConfigDirs lists the directories searched for config files, most specific
// first.
type ConfigDirs []string

func (Module) ConfigDirs(
	t *testing.T,
) (ret ConfigDirs) {
	// tests never see the user's files
	if t != nil {
		return ConfigDirs{t.TempDir()}
	}
	if dir, err := os.Getwd(); err == nil {
		ret = append(ret, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		ret = append(ret, dir)
	}
	ret = append(ret, "/etc")
	return
}

func (Module) ConfigsLoader(
	dirs ConfigDirs,
	logger logs.Logger,
) configs.Loader {
	// explicit files come first and must exist
	paths := slices.Clone(*configFlag)
	for _, dir := range dirs {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	loader := configs.NewLoader(paths, schema)
	if len(loader.Paths()) > 0 {
		logger.Debug("config files", "paths", loader.Paths())
	}
	return loader
}
