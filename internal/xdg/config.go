package xdg

import (
	"os"
	"path/filepath"

	"github.com/rkoesters/xdg/basedir"
)

// ConfigFile returns the path of name in the user config directory of app,
// whether it exists or not.
func ConfigFile(app, name string) string {
	return filepath.Join(basedir.ConfigHome, app, name)
}

// FindConfigFile returns the first existing name in the config directories of
// app, user directory first. It returns false if there is none.
func FindConfigFile(app, name string) (string, bool) {
	dirs := append([]string{basedir.ConfigHome}, basedir.ConfigDirs...)
	for _, dir := range dirs {
		if len(dir) == 0 {
			continue
		}
		p := filepath.Join(dir, app, name)
		fi, err := os.Stat(p)
		if err != nil || fi.IsDir() {
			continue
		}
		return p, true
	}
	return ``, false
}
