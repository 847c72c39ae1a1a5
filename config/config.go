/*
Velociraptor - Dig Deeper
Copyright (C) 2019-2025 Rapid7 Inc.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published
by the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package config

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"www.velocidex.com/golang/pipeowners/constants"
	"www.velocidex.com/golang/pipeowners/utils"
)

// Embed build time constants into here for reporting the version.
var (
	build_time  string
	commit_hash string
)

type PipesConfig struct {
	// The directory holding the named pipe objects.
	Root string `yaml:"root,omitempty"`

	// Either "fatal" or "empty".
	OnNamespaceError string `yaml:"on_namespace_error,omitempty"`
}

type OutputConfig struct {
	Show bool   `yaml:"show,omitempty"`
	Text string `yaml:"text,omitempty"`
	Json string `yaml:"json,omitempty"`
	Csv  string `yaml:"csv,omitempty"`

	// Double embedded quotes in CSV cells. When false quotes are
	// written as is, which some spreadsheet programs will misread.
	CsvEscapeQuotes bool `yaml:"csv_escape_quotes"`

	Summary bool `yaml:"summary,omitempty"`
	NoColor bool `yaml:"nocolor,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

type Config struct {
	Pipes   PipesConfig   `yaml:"Pipes"`
	Output  OutputConfig  `yaml:"Output"`
	Logging LoggingConfig `yaml:"Logging"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Pipes: PipesConfig{
			Root:             constants.PIPE_ROOT,
			OnNamespaceError: constants.NAMESPACE_POLICY_FATAL,
		},
		Output: OutputConfig{
			CsvEscapeQuotes: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load the config stored in the YAML file on top of the defaults. An
// empty filename just returns the defaults.
func LoadConfig(filename string) (*Config, error) {
	config_obj := GetDefaultConfig()
	if filename == "" {
		return config_obj, nil
	}

	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "LoadConfig")
	}

	err = ParseConfigFromString(data, config_obj)
	if err != nil {
		return nil, err
	}

	return config_obj, ValidateConfig(config_obj)
}

func ParseConfigFromString(config_string []byte, config_obj *Config) error {
	err := yaml.Unmarshal(config_string, config_obj)
	if err != nil {
		return errors.Wrap(err, "ParseConfigFromString")
	}
	return nil
}

func ValidateConfig(config_obj *Config) error {
	if config_obj.Pipes.Root == "" {
		return errors.Wrap(utils.InvalidConfigError, "Pipes.root must be set")
	}

	// Pipe names are appended directly to the root.
	if !strings.HasSuffix(config_obj.Pipes.Root, `\`) {
		config_obj.Pipes.Root += `\`
	}

	switch config_obj.Pipes.OnNamespaceError {
	case "":
		config_obj.Pipes.OnNamespaceError = constants.NAMESPACE_POLICY_FATAL
	case constants.NAMESPACE_POLICY_FATAL, constants.NAMESPACE_POLICY_EMPTY:
	default:
		return errors.Wrapf(utils.InvalidConfigError,
			"Pipes.on_namespace_error: unknown policy %q",
			config_obj.Pipes.OnNamespaceError)
	}

	switch strings.ToLower(config_obj.Logging.Level) {
	case "":
		config_obj.Logging.Level = "info"
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.Wrapf(utils.InvalidConfigError,
			"Logging.level: unknown level %q", config_obj.Logging.Level)
	}

	return nil
}

func Encode(config_obj *Config) ([]byte, error) {
	return yaml.Marshal(config_obj)
}

func WriteConfigToFile(filename string, config_obj *Config) error {
	bytes, err := Encode(config_obj)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filename, bytes, os.FileMode(0644))
}
