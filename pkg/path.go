package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// dirMode is the permission mode of created runtime directories.
const dirMode os.FileMode = 0o700

var executableRules = []struct {
	match   *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`^__debug_bin\d+$`), Name}, // dlv output
}

// Prefix returns the name of the running executable without extension, used
// to name the runtime directories. Leading dots are dropped, and debugger
// binaries map to [Name].
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(func() string {
	return prefixOf(os.Args[0])
})

func prefixOf(arg0 string) string {
	id := arg0
	if exe, err := os.Executable(); err == nil && arg0 == os.Args[0] {
		id = exe
	}

	id = strings.TrimLeft(filepath.Base(id), ".")
	id = strings.TrimSuffix(id, filepath.Ext(id))

	for _, rule := range executableRules {
		id = rule.match.ReplaceAllString(id, rule.replace)
	}

	if id == "" {
		return Name
	}

	return id
}

// userDir returns base (from an os.User*Dir function) joined with [Prefix],
// falling back to fallback under the home directory, then to the working
// directory.
func userDir(base func() (string, error), fallback string) string {
	dir, err := base()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else if wd, werr := os.Getwd(); werr == nil {
			dir = wd
		} else {
			dir = "."
		}
	}

	return filepath.Join(dir, Prefix())
}

// ConfigDir returns the directory holding the configuration file.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// CacheDir returns the directory holding transient files such as REPL
// history and profiles.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// ConfigPath joins elem onto [ConfigDir].
func ConfigPath(elem ...string) string {
	return filepath.Join(append([]string{ConfigDir()}, elem...)...)
}

// CachePath joins elem onto [CacheDir].
func CachePath(elem ...string) string {
	return filepath.Join(append([]string{CacheDir()}, elem...)...)
}

// MkdirAll creates the configuration and cache directories.
func MkdirAll() error {
	for _, dir := range []string{ConfigDir(), CacheDir()} {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return err
		}
	}

	return nil
}
