// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "GESTURE_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize must be called once at program startup.
func Initialize() error {
	once.Do(func() {
		paths = &Paths{
			configDir:      "gesture",
			configFileName: "config.yml",
			logFileName:    "gesture.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.logFileName = fmt.Sprintf("gesture_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.configDir, p.configFileName),
	)
	if err != nil {
		return err
	}

	p.logFilePath, err = xdg.DataFile(
		filepath.Join(p.configDir, "log", p.logFileName),
	)
	if err != nil {
		return err
	}

	return nil
}
