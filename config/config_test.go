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
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"www.velocidex.com/golang/pipeowners/constants"
	"www.velocidex.com/golang/pipeowners/utils"
)

func TestDefaultConfig(t *testing.T) {
	config_obj, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, constants.PIPE_ROOT, config_obj.Pipes.Root)
	assert.Equal(t, constants.NAMESPACE_POLICY_FATAL, config_obj.Pipes.OnNamespaceError)
	assert.True(t, config_obj.Output.CsvEscapeQuotes)
	assert.False(t, config_obj.Output.Show)
}

func TestConfig(t *testing.T) {
	config_obj, err := LoadConfig("test_data/pipeowners.yaml")
	require.NoError(t, err)

	// Unset keys keep their defaults.
	assert.Equal(t, constants.PIPE_ROOT, config_obj.Pipes.Root)

	assert.Equal(t, constants.NAMESPACE_POLICY_EMPTY, config_obj.Pipes.OnNamespaceError)
	assert.Equal(t, "pipes.json", config_obj.Output.Json)
	assert.Equal(t, "pipes.csv", config_obj.Output.Csv)
	assert.Equal(t, "", config_obj.Output.Text)
	assert.False(t, config_obj.Output.CsvEscapeQuotes)
	assert.True(t, config_obj.Output.Summary)
	assert.Equal(t, "debug", config_obj.Logging.Level)
}

func TestBadPolicy(t *testing.T) {
	_, err := LoadConfig("test_data/bad_policy.yaml")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, utils.InvalidConfigError))
}

func TestMissingFile(t *testing.T) {
	_, err := LoadConfig("test_data/does_not_exist.yaml")
	assert.Error(t, err)
}

func TestRootGetsSeparator(t *testing.T) {
	config_obj := GetDefaultConfig()
	config_obj.Pipes.Root = `\\.\pipe`
	require.NoError(t, ValidateConfig(config_obj))
	assert.Equal(t, `\\.\pipe\`, config_obj.Pipes.Root)

	config_obj.Pipes.Root = ""
	assert.Error(t, ValidateConfig(config_obj))
}

func TestWriteConfigRoundTrip(t *testing.T) {
	config_obj := GetDefaultConfig()
	config_obj.Output.Text = "out.txt"
	config_obj.Output.CsvEscapeQuotes = false

	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteConfigToFile(filename, config_obj))

	loaded, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, config_obj, loaded)
}
