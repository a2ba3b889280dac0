package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override setting.yaml
const (
	EnvHome        = "HELLO_HOME"
	EnvStderrLevel = "HELLO_STDERR_LEVEL"
	EnvFormat      = "HELLO_FORMAT"
	EnvJournal     = "HELLO_JOURNAL"
	EnvNormalize   = "HELLO_NORMALIZE"
)

// BaseDir returns the base directory, honoring HELLO_HOME
func BaseDir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	return ".helloworld"
}

// applyEnvOverrides overwrites settings from the environment and reports
// whether any variable was applied
func applyEnvOverrides(settings *RawSettings) (bool, error) {
	applied := false
	str := func(key string, dst **string) {
		if v := os.Getenv(key); v != "" {
			*dst = &v
			applied = true
		}
	}

	str(EnvStderrLevel, &settings.StderrLevel)
	str(EnvFormat, &settings.Format)
	str(EnvJournal, &settings.Journal)

	if v := os.Getenv(EnvNormalize); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return applied, fmt.Errorf("config: invalid %s %q: %w", EnvNormalize, v, err)
		}
		settings.Normalize = &b
		applied = true
	}
	return applied, nil
}
