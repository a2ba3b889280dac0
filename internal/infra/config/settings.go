package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/YoshitsuguKoike/helloworld/internal/app/config"
)

// SettingFile is the settings file name inside the base directory
const SettingFile = "setting.yaml"

// RawSettings represents the structure of setting.yaml.
// Pointer fields distinguish "unset" from zero values.
type RawSettings struct {
	Home        *string `yaml:"home"`
	StderrLevel *string `yaml:"stderr_level"`
	Format      *string `yaml:"format"`
	Journal     *string `yaml:"journal"` // relative paths resolve against home
	Normalize   *bool   `yaml:"normalize"`
}

// LoadSettings loads configuration from <baseDir>/setting.yaml and the environment.
// Priority: ENV > setting.yaml > defaults
func LoadSettings(fs afero.Fs, baseDir string) (*config.AppConfig, error) {
	settings := &RawSettings{}
	configSource := "default"
	settingPath := ""

	yamlPath := filepath.Join(baseDir, SettingFile)
	data, err := afero.ReadFile(fs, yamlPath)
	switch {
	case err == nil:
		if err := decodeSettings(data, settings); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", yamlPath, err)
		}
		configSource = "yaml"
		settingPath = yamlPath
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("config: read %s: %w", yamlPath, err)
	}

	applied, err := applyEnvOverrides(settings)
	if err != nil {
		return nil, err
	}
	if applied {
		configSource = "env"
	}

	applyDefaults(settings, baseDir)
	resolveJournal(settings)

	if !config.IsValidFormat(*settings.Format) {
		return nil, fmt.Errorf("config: unsupported format %q", *settings.Format)
	}

	return buildAppConfig(settings, configSource, settingPath), nil
}

func decodeSettings(data []byte, settings *RawSettings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyDefaults fills in default values for any nil fields
func applyDefaults(settings *RawSettings, baseDir string) {
	if settings.Home == nil {
		v := baseDir
		settings.Home = &v
	}
	if settings.StderrLevel == nil {
		v := "warn"
		settings.StderrLevel = &v
	}
	if settings.Format == nil {
		v := config.FormatText
		settings.Format = &v
	}
	if settings.Journal == nil {
		v := ""
		settings.Journal = &v
	}
	if settings.Normalize == nil {
		v := false
		settings.Normalize = &v
	}
}

// resolveJournal anchors a relative journal path at the home directory
func resolveJournal(settings *RawSettings) {
	journal := *settings.Journal
	if journal == "" || filepath.IsAbs(journal) {
		return
	}
	v := filepath.Join(*settings.Home, journal)
	settings.Journal = &v
}

// buildAppConfig converts RawSettings to AppConfig
func buildAppConfig(settings *RawSettings, configSource, settingPath string) *config.AppConfig {
	return config.NewAppConfig(
		*settings.Home,
		*settings.StderrLevel,
		*settings.Format,
		*settings.Journal,
		*settings.Normalize,
		configSource,
		settingPath,
	)
}
