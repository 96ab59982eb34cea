// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads the optional labelprep TOML configuration file. The
config supplies defaults for flags (input path, output directory), the blank
line policy, and a minimum required labelprep version.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	goversion "github.com/hashicorp/go-version"
	"github.com/trexplorer/labelprep/pkg/partition"
)

type Config struct {
	InputPath  string `toml:"input_path"`
	OutputDir  string `toml:"output_dir"`
	BlankLines string `toml:"blank_lines"` // "skip" (default) or "error"

	MinimumRequiredVersion string `toml:"minimum_required_version"`
}

func Load(path string) (Config, error) {
	var config Config

	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		return Config{}, fmt.Errorf("Parsing config file '%s': %s", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("Parsing config file '%s': unknown keys: %s",
			path, strings.Join(keys, ", "))
	}

	if _, err := config.BlankPolicy(); err != nil {
		return Config{}, fmt.Errorf("Parsing config file '%s': %s", path, err)
	}

	return config, nil
}

// BlankPolicy maps the blank_lines setting onto a partition.BlankPolicy.
func (c Config) BlankPolicy() (partition.BlankPolicy, error) {
	switch c.BlankLines {
	case "", "skip":
		return partition.BlankSkip, nil
	case "error":
		return partition.BlankError, nil
	default:
		return partition.BlankSkip, fmt.Errorf("Expected blank_lines to be one of 'skip', 'error', but was '%s'", c.BlankLines)
	}
}

// CheckVersion errs when the running binary is older than the
// minimum_required_version declared in the config.
func (c Config) CheckVersion(current string) error {
	if c.MinimumRequiredVersion == "" {
		return nil
	}

	constraint, err := goversion.NewConstraint(">= " + c.MinimumRequiredVersion)
	if err != nil {
		return fmt.Errorf("Parsing minimum_required_version '%s': %s", c.MinimumRequiredVersion, err)
	}

	currVersion, err := goversion.NewVersion(current)
	if err != nil {
		return fmt.Errorf("Parsing current version '%s': %s", current, err)
	}

	if !constraint.Check(currVersion) {
		return fmt.Errorf("labelprep version %s does not meet the minimum required version %s",
			current, c.MinimumRequiredVersion)
	}

	return nil
}
