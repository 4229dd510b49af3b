// FILE: lixenwraith/xrmconfig/xrdb/discover.go

package xrdb

import (
	"os"
	"path/filepath"
)

// EnvResources names an explicit resource file, as honoured by Xlib clients.
const EnvResources = "XENVIRONMENT"

// configNames are tried in order inside each application config directory.
// A bare "config" file uses Xresources syntax.
var configNames = []string{"config", "config.toml", "config.yaml", "config.yml", "config.json"}

// DiscoverPath locates the resource file for app. Search order:
// $XENVIRONMENT, the XDG config directories, ~/.Xresources, ~/.Xdefaults.
func DiscoverPath(app string) (string, bool) {
	if path := os.Getenv(EnvResources); path != "" {
		if fileExists(path) {
			return path, true
		}
	}

	for _, dir := range getXDGConfigPaths(app) {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if fileExists(path) {
				return path, true
			}
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range []string{".Xresources", ".Xdefaults"} {
			path := filepath.Join(home, name)
			if fileExists(path) {
				return path, true
			}
		}
	}
	return "", false
}

// Discover returns a FileSource for the discovered file. When nothing is
// found the source reports ErrNoDatabase on Open.
func Discover(app string) FileSource {
	path, _ := DiscoverPath(app)
	return FileSource{Path: path}
}

// getXDGConfigPaths returns XDG-compliant config search paths.
func getXDGConfigPaths(appName string) []string {
	var paths []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths, filepath.Join("/etc/xdg", appName))
	}

	return paths
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
