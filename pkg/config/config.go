package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ini "gopkg.in/ini.v1"
)

// Config carries the CLI defaults. A missing file is not an error; the
// zero-config defaults apply.
type Config struct {
	HardConversion bool
	Complete       string
	Romanize       bool
	Encoding       string
}

const (
	defaultComplete = ""
	defaultEncoding = "utf-8"
)

func Default() Config {
	return Config{HardConversion: true, Complete: defaultComplete, Encoding: defaultEncoding}
}

func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	pronounce := file.Section("pronounce")
	cfg.HardConversion = pronounce.Key("hard_conversion").MustBool(cfg.HardConversion)
	cfg.Complete = pronounce.Key("complete").MustString(cfg.Complete)

	output := file.Section("output")
	cfg.Romanize = output.Key("romanize").MustBool(cfg.Romanize)
	cfg.Encoding = output.Key("encoding").MustString(cfg.Encoding)

	return cfg, nil
}
