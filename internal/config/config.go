// avsg-go: Axiom Verge save game inspector
// Copyright (C) 2018  Yishen Miao
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads avsg settings from defaults, an optional JSON file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// FileName is the name of the optional configuration file.
	FileName = "avsg.cfg.json"
	// EnvPrefix prefixes environment overrides, e.g. AVSG_LOGLEVEL.
	EnvPrefix = "AVSG"
)

// Keys.
const (
	LogLevel    = "logLevel"
	NoColor     = "noColor"
	Unencrypted = "unencrypted"
)

// Load sets default values and reads the configuration file from the first
// of dirs that has one. A missing file is not an error.
func Load(dirs ...string) error {
	viper.SetDefault(LogLevel, "warn")
	viper.SetDefault(NoColor, false)
	viper.SetDefault(Unencrypted, false)

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")

	for _, dir := range dirs {
		viper.AddConfigPath(dir)
	}

	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// Dirs returns the directories searched for the configuration file: the
// working directory, then avsg under the user configuration directory.
func Dirs() []string {
	dirs := []string{"."}

	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "avsg"))
	}

	return dirs
}

// Used returns the configuration file that was read, or "" if none was.
func Used() string {
	return viper.ConfigFileUsed()
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
