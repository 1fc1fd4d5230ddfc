/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v3"
)

const (
	configName = ".cookbook"
	envPrefix  = "COOKBOOK"
)

// settings resolves option values from flags, environment and config file,
// in that order of precedence.
type settings struct {
	v *viper.Viper
}

func newSettings() *settings {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &settings{v: v}
}

// load reads the config file at path. With an empty path .cookbook.yaml is
// looked up in $HOME and the working directory; a missing file is not an
// error in that case.
func (s *settings) load(path string) error {
	if path != "" {
		s.v.SetConfigFile(path)
		// Fail fast if user-specified config doesn't exist
		if err := s.v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file %s: %w", path, err)
		}
		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		s.v.AddConfigPath(home)
	}
	s.v.AddConfigPath(".")
	s.v.SetConfigType("yaml")
	s.v.SetConfigName(configName)

	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// String returns the flag value when set on the command line, else the
// configured value, else the flag default.
func (s *settings) String(cmd *cli.Command, key string) string {
	if cmd.IsSet(key) {
		return cmd.String(key)
	}
	if s.v.IsSet(key) {
		return s.v.GetString(key)
	}
	return cmd.String(key)
}

// Int is the integer counterpart of String.
func (s *settings) Int(cmd *cli.Command, key string) int {
	if cmd.IsSet(key) {
		return cmd.Int(key)
	}
	if s.v.IsSet(key) {
		return s.v.GetInt(key)
	}
	return cmd.Int(key)
}

// Bool is the boolean counterpart of String.
func (s *settings) Bool(cmd *cli.Command, key string) bool {
	if cmd.IsSet(key) {
		return cmd.Bool(key)
	}
	if s.v.IsSet(key) {
		return s.v.GetBool(key)
	}
	return cmd.Bool(key)
}
