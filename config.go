package main

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config carries interpreter settings merged from defaults, the config
// file, KOTOBA_ environment variables, and command line flags -- later
// sources win.
type Config struct {
	Trace       bool     `koanf:"trace"`
	LoadPaths   []string `koanf:"load-paths"`
	Prompt      string   `koanf:"prompt"`
	HistoryFile string   `koanf:"history-file"`
}

const (
	configFileName    = "kotoba.yaml"
	configFileNameAlt = "kotoba.yml"
)

// findConfigFile picks the config file to use: an explicit path wins,
// otherwise kotoba.yaml then kotoba.yml in the working directory. Empty
// means no config file, which is not an error.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}
	if _, err := os.Stat(configFileNameAlt); err == nil {
		return configFileNameAlt
	}
	return ""
}

func loadConfig(explicit string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"trace":        false,
		"load-paths":   []string{"."},
		"prompt":       "言葉> ",
		"history-file": "",
	}, "."), nil); err != nil {
		return Config{}, err
	}

	if path := findConfigFile(explicit); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, err
		}
	}

	// KOTOBA_LOAD_PATHS=lib becomes load-paths=lib
	if err := k.Load(env.Provider("KOTOBA_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "KOTOBA_")), "_", "-")
	}), nil); err != nil {
		return Config{}, err
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
