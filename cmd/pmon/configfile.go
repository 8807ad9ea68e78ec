// ABOUTME: Optional YAML defaults file for the pmon CLI, resolved under XDG_CONFIG_HOME.
// ABOUTME: Values only fill flags the user did not set on the command line.
package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// fileConfig is the on-disk shape of the defaults file.
type fileConfig struct {
	Interval *int   `yaml:"interval"`
	Color    string `yaml:"color"`
	LogLevel string `yaml:"log_level"`
}

// defaultConfigDir returns the config directory for pmon.
// It checks XDG_CONFIG_HOME first, then falls back to ~/.config/pmon.
func defaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pmon"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve home directory")
	}

	return filepath.Join(home, ".config", "pmon"), nil
}

// loadConfigFile reads path, or the default location when path is empty. A
// missing default file is not an error; a missing explicit one is.
func loadConfigFile(path string) (fileConfig, error) {
	explicit := path != ""
	if !explicit {
		dir, err := defaultConfigDir()
		if err != nil {
			return fileConfig{}, nil
		}
		path = filepath.Join(dir, configFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, errors.Wrapf(err, "read config file %s", path)
	}

	fc, err := decodeConfig(data)
	if err != nil {
		return fileConfig{}, errors.Wrapf(err, "parse config file %s", path)
	}
	return fc, nil
}

// decodeConfig rejects unknown keys so typos surface instead of being ignored.
func decodeConfig(data []byte) (fileConfig, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, err
	}
	return fc, nil
}

// apply sets every flag the file provides that was not given explicitly.
// Values go through the flags' own parsing so the same rules apply.
func (fc fileConfig) apply(flags *pflag.FlagSet) error {
	values := map[string]string{
		"color":     fc.Color,
		"log-level": fc.LogLevel,
	}
	if fc.Interval != nil {
		values["interval"] = strconv.Itoa(*fc.Interval)
	}

	for name, v := range values {
		if v == "" || flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return errors.Wrapf(err, "config file %s", name)
		}
	}
	return nil
}
