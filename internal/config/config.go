package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${CHORDBIND_HOME}/config.yaml'.
type Config struct {
	Scheme   string `yaml:"scheme"`
	Tick     string `yaml:"tick"`
	Diagnose *bool  `yaml:"diagnose,omitempty"`
	Colors   Colors `yaml:"colors"`
	Log      Log    `yaml:"log"`
}

// Colors are the colors of the action view, as hex strings (e.g. "#c2edab").
type Colors struct {
	Active     string `yaml:"active"`
	Inactive   string `yaml:"inactive"`
	Background string `yaml:"background"`
}

// Log configures logging.
type Log struct {
	// Level is a zerolog level name, e.g. "debug" or "warn".
	Level string `yaml:"level"`
}

// TickInterval returns the parsed tick interval.
//
// For format see time.ParseDuration. The interval must be positive.
func (c Config) TickInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Tick)
	if err != nil {
		return 0, fmt.Errorf("invalid tick '%s': %w", c.Tick, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("tick must be positive, is '%s'", c.Tick)
	}
	return d, nil
}

// ShouldDiagnose returns whether binding diagnostics are to be logged at
// startup.
func (c Config) ShouldDiagnose() bool {
	return c.Diagnose != nil && *c.Diagnose
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment the default configuration.
func ParseConfigAugmentDefaults(yamlData []byte) (Config, error) {
	defaultConfig := Default()

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	if _, err := result.TickInterval(); err != nil {
		return defaultConfig, err
	}

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	if augment.Scheme != "" {
		result.Scheme = augment.Scheme
	}
	if augment.Tick != "" {
		result.Tick = augment.Tick
	}
	if augment.Diagnose != nil {
		result.Diagnose = augment.Diagnose
	}
	result.Colors = base.Colors.augmentWith(augment.Colors)
	if augment.Log.Level != "" {
		result.Log.Level = augment.Log.Level
	}

	return result
}

func (base Colors) augmentWith(augment Colors) Colors {
	result := base

	overwriteIfDefined(&result.Active, augment.Active)
	overwriteIfDefined(&result.Inactive, augment.Inactive)
	overwriteIfDefined(&result.Background, augment.Background)

	return result
}

func overwriteIfDefined(s *string, augment string) {
	if augment != "" {
		*s = augment
	}
}
