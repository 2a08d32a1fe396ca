package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/chordbind/internal/config"
	"github.com/ja-he/chordbind/internal/input"
	"github.com/ja-he/chordbind/internal/schemes"
)

// baseDirPath returns the directory holding the configuration, i.E.
// '${CHORDBIND_HOME}' or, if unset, '${HOME}/.config/chordbind'.
func baseDirPath() string {
	chordbindHome := os.Getenv("CHORDBIND_HOME")
	if chordbindHome == "" {
		return os.Getenv("HOME") + "/.config/chordbind"
	}
	return strings.TrimRight(chordbindHome, "/")
}

// loadConfig reads the config file, if present, and augments the defaults with
// it. The global log level is set per the resulting config.
func loadConfig() (config.Config, error) {
	configPath := path.Join(baseDirPath(), "config.yaml")
	yamlData, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("file", configPath).Msg("no config file, using defaults")
		yamlData = make([]byte, 0)
	} else if err != nil {
		return config.Default(), fmt.Errorf("can't read config file '%s': %w", configPath, err)
	}

	configData, err := config.ParseConfigAugmentDefaults(yamlData)
	if err != nil {
		return configData, fmt.Errorf("can't parse config data: %w", err)
	}

	level, err := zerolog.ParseLevel(configData.Log.Level)
	if err != nil {
		return configData, fmt.Errorf("invalid log level '%s': %w", configData.Log.Level, err)
	}
	zerolog.SetGlobalLevel(level)

	return configData, nil
}

// newSchemeRegistry returns a registry with the named scheme registered, the
// scheme defaulting to the configured one if name is empty.
func newSchemeRegistry(name string, configData config.Config, logger zerolog.Logger) (*input.Registry, error) {
	if name == "" {
		name = configData.Scheme
	}
	set, err := schemes.Lookup(name)
	if err != nil {
		return nil, err
	}

	registry := input.NewRegistry(logger)
	registry.RegisterFromSet(set)
	log.Debug().Str("scheme", name).Int("entries", len(registry.Entries())).Msg("registered scheme")
	return registry, nil
}
