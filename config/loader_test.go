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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"www.velocidex.com/golang/pipeowners/constants"
	"www.velocidex.com/golang/pipeowners/utils"
)

func TestLoaderFallsBackToDefaults(t *testing.T) {
	t.Setenv("PIPEOWNERS_TEST_CONFIG", "")

	config_obj, err := new(Loader).
		WithFileLoader("").
		WithEnvLoader("PIPEOWNERS_TEST_CONFIG").
		WithDefaultLoader().
		LoadAndValidate()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), config_obj)
}

func TestLoaderEnv(t *testing.T) {
	t.Setenv("PIPEOWNERS_TEST_CONFIG", "test_data/pipeowners.yaml")

	config_obj, err := new(Loader).
		WithEnvLoader("PIPEOWNERS_TEST_CONFIG").
		WithDefaultLoader().
		LoadAndValidate()
	require.NoError(t, err)
	assert.Equal(t, "pipes.json", config_obj.Output.Json)
}

func TestLoaderHardError(t *testing.T) {
	// A named config file that is broken does not fall back.
	_, err := new(Loader).
		WithFileLoader("test_data/bad_policy.yaml").
		WithDefaultLoader().
		LoadAndValidate()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, utils.InvalidConfigError))
}

func TestLoaderMutators(t *testing.T) {
	config_obj, err := new(Loader).
		WithFileLoader("test_data/pipeowners.yaml").
		WithLogFile("/tmp/pipeowners.log").
		WithConfigMutator("Flags", func(config_obj *Config) error {
			config_obj.Output.Csv = ""
			config_obj.Pipes.OnNamespaceError = constants.NAMESPACE_POLICY_FATAL
			return nil
		}).
		LoadAndValidate()
	require.NoError(t, err)

	assert.Equal(t, "", config_obj.Output.Csv)
	assert.Equal(t, "pipes.json", config_obj.Output.Json)
	assert.Equal(t, constants.NAMESPACE_POLICY_FATAL, config_obj.Pipes.OnNamespaceError)
	assert.Equal(t, "/tmp/pipeowners.log", config_obj.Logging.File)

	// Mutators are validated too.
	_, err = new(Loader).
		WithDefaultLoader().
		WithConfigMutator("Flags", func(config_obj *Config) error {
			config_obj.Pipes.OnNamespaceError = "retry"
			return nil
		}).
		LoadAndValidate()
	assert.True(t, errors.Is(err, utils.InvalidConfigError))
}

func TestLoaderNoSource(t *testing.T) {
	_, err := new(Loader).LoadAndValidate()
	assert.Error(t, err)
}
