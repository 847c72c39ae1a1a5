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
package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"www.velocidex.com/golang/pipeowners/config"
)

func TestPipesFlagsOverrideConfig(t *testing.T) {
	config_file := filepath.Join(t.TempDir(), "pipeowners.yaml")
	file_config := config.GetDefaultConfig()
	file_config.Output.Csv = "from_file.csv"
	file_config.Output.Summary = true
	require.NoError(t, config.WriteConfigToFile(config_file, file_config))

	command, err := app.Parse([]string{
		"--config", config_file,
		"-j", "out.json",
		"--no-csv_escape_quotes",
		"--on_namespace_error", "empty",
		"--pipe_root", `\\.\pipe`,
	})
	require.NoError(t, err)

	// pipes is the default command.
	assert.Equal(t, pipes_command.FullCommand(), command)

	config_obj, err := load_config(applyPipesFlags)
	require.NoError(t, err)

	assert.Equal(t, "out.json", config_obj.Output.Json)
	assert.Equal(t, "from_file.csv", config_obj.Output.Csv)
	assert.True(t, config_obj.Output.Summary)
	assert.False(t, config_obj.Output.CsvEscapeQuotes)
	assert.False(t, config_obj.Output.Show)
	assert.Equal(t, "empty", config_obj.Pipes.OnNamespaceError)
	assert.Equal(t, `\\.\pipe\`, config_obj.Pipes.Root)
	assert.Equal(t, "info", config_obj.Logging.Level)
}
