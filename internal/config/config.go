// Package config loads examine.cfg.json through viper.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const FileName = "examine.cfg.json"

type WindowConfig struct {
	Width     int    `json:"width" mapstructure:"width"`
	Height    int    `json:"height" mapstructure:"height"`
	Title     string `json:"title" mapstructure:"title"`
	TargetFPS int    `json:"targetFps" mapstructure:"targetFps"`
	Resizable bool   `json:"resizable" mapstructure:"resizable"`
}

type ExamineConfig struct {
	InteractDistance float32 `json:"interactDistance" mapstructure:"interactDistance"`
	InspectDistance  float32 `json:"inspectDistance" mapstructure:"inspectDistance"`
}

type InputConfig struct {
	MouseSensitivity float32 `json:"mouseSensitivity" mapstructure:"mouseSensitivity"`
	// Bindings maps action names to key names, e.g. "interact": "E".
	Bindings map[string]string `json:"bindings" mapstructure:"bindings"`
}

type AudioConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float32 `json:"volume" mapstructure:"volume"`
	// Sounds maps sound handles to file paths.
	Sounds map[string]string `json:"sounds" mapstructure:"sounds"`
}

type UIConfig struct {
	ShowHelp bool `json:"showHelp" mapstructure:"showHelp"`
	FontSize int  `json:"fontSize" mapstructure:"fontSize"`
	// Fonts maps font names used by items to file paths.
	Fonts map[string]string `json:"fonts" mapstructure:"fonts"`
	// BlurAlpha is the opacity of the backdrop drawn behind an examined item.
	BlurAlpha float32 `json:"blurAlpha" mapstructure:"blurAlpha"`
}

type Config struct {
	LogLevel  string        `json:"logLevel" mapstructure:"logLevel"`
	LogFile   string        `json:"logFile" mapstructure:"logFile"`
	ScenePath string        `json:"scenePath" mapstructure:"scenePath"`
	Window    WindowConfig  `json:"window" mapstructure:"window"`
	Examine   ExamineConfig `json:"examine" mapstructure:"examine"`
	Input     InputConfig   `json:"input" mapstructure:"input"`
	Audio     AudioConfig   `json:"audio" mapstructure:"audio"`
	UI        UIConfig      `json:"ui" mapstructure:"ui"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")
	viper.SetDefault("scenePath", "assets/scenes/study.json")

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.title", "Examine")
	viper.SetDefault("window.targetFps", 60)
	viper.SetDefault("window.resizable", true)

	viper.SetDefault("examine.interactDistance", 5.0)
	viper.SetDefault("examine.inspectDistance", 25.0)

	viper.SetDefault("input.mouseSensitivity", 0.1)
	viper.SetDefault("input.bindings.interact", "E")
	viper.SetDefault("input.bindings.rotate", "Mouse0")
	viper.SetDefault("input.bindings.drop", "Q")

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", 1.0)

	viper.SetDefault("ui.showHelp", true)
	viper.SetDefault("ui.fontSize", 24)
	viper.SetDefault("ui.blurAlpha", 0.6)
}

// Load reads FileName from configDir on top of the defaults. A missing file
// is not an error; a malformed one is.
func Load(configDir string) (Config, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

// Flags returns the command-line flags that override config values.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("examine", pflag.ContinueOnError)
	fs.String("config", ".", "directory containing "+FileName)
	fs.String("log-level", "", "log level (trace, debug, info, warn, error)")
	fs.String("log-file", "", "also write logs to this file")
	fs.String("scene", "", "scene file to load")
	return fs
}

var flagKeys = map[string]string{
	"log-level": "logLevel",
	"log-file":  "logFile",
	"scene":     "scenePath",
}

// BindFlags lets flags set on the command line win over the config file.
// Call it before Load.
func BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Used reports the config file viper read, or "" when running on defaults.
func Used() string {
	return viper.ConfigFileUsed()
}
