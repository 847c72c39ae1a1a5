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
	"os"

	"github.com/pkg/errors"
)

// A hard error causes the loader to stop immediately.
type HardError struct {
	Err error
}

func (self HardError) Error() string {
	return self.Err.Error()
}

func (self HardError) Unwrap() error {
	return self.Err
}

type loaderFunction struct {
	name        string
	loader_func func(self *Loader) (*Config, error)
}

type configMutator struct {
	name                string
	config_mutator_func func(config_obj *Config) error
}

// Builds a config from the first loader that succeeds, then applies
// the mutators (command line overrides) in order and validates the
// result.
type Loader struct {
	loaders         []loaderFunction
	config_mutators []configMutator
}

func (self *Loader) Copy() *Loader {
	return &Loader{
		loaders:         append([]loaderFunction{}, self.loaders...),
		config_mutators: append([]configMutator{}, self.config_mutators...),
	}
}

func (self *Loader) WithFileLoader(filename string) *Loader {
	if filename == "" {
		return self
	}

	self = self.Copy()
	self.loaders = append(self.loaders, loaderFunction{
		name: "WithFileLoader",
		loader_func: func(self *Loader) (*Config, error) {
			result, err := LoadConfig(filename)
			if err != nil {
				// A config file that was asked for must be
				// usable.
				return nil, HardError{err}
			}
			return result, nil
		}})
	return self
}

func (self *Loader) WithEnvLoader(env_var string) *Loader {
	self = self.Copy()
	self.loaders = append(self.loaders, loaderFunction{
		name: "WithEnvLoader",
		loader_func: func(self *Loader) (*Config, error) {
			filename, pres := os.LookupEnv(env_var)
			if !pres || filename == "" {
				return nil, errors.Errorf("%v is not set", env_var)
			}

			result, err := LoadConfig(filename)
			if err != nil {
				return nil, HardError{err}
			}
			return result, nil
		}})
	return self
}

// Falls back to the built in defaults.
func (self *Loader) WithDefaultLoader() *Loader {
	self = self.Copy()
	self.loaders = append(self.loaders, loaderFunction{
		name: "WithDefaultLoader",
		loader_func: func(self *Loader) (*Config, error) {
			return GetDefaultConfig(), nil
		}})
	return self
}

func (self *Loader) WithConfigMutator(
	name string,
	mutator func(config_obj *Config) error) *Loader {
	self = self.Copy()
	self.config_mutators = append(self.config_mutators, configMutator{
		name:                name,
		config_mutator_func: mutator,
	})
	return self
}

func (self *Loader) WithLogFile(filename string) *Loader {
	if filename == "" {
		return self
	}

	return self.WithConfigMutator("WithLogFile",
		func(config_obj *Config) error {
			config_obj.Logging.File = filename
			return nil
		})
}

func (self *Loader) Validate(config_obj *Config) error {
	for _, mutator := range self.config_mutators {
		err := mutator.config_mutator_func(config_obj)
		if err != nil {
			return errors.Wrap(err, mutator.name)
		}
	}

	return ValidateConfig(config_obj)
}

func (self *Loader) LoadAndValidate() (*Config, error) {
	var last_err error

	for _, loader := range self.loaders {
		result, err := loader.loader_func(self)
		if err == nil {
			return result, self.Validate(result)
		}

		// Stop on hard errors.
		_, ok := err.(HardError)
		if ok {
			return nil, err
		}
		last_err = err
	}

	if last_err == nil {
		last_err = errors.New("no loaders configured")
	}
	return nil, errors.Wrap(last_err, "Unable to load config from any source")
}
