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
/* An internal package with test utilities.
 */

package vtesting

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"www.velocidex.com/golang/pipeowners/config"
)

func ReadFile(t *testing.T, filename string) []byte {
	result, err := ioutil.ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed reading file: %v", err)
	}
	return result
}

func ContainsString(expected string, watched []string) bool {
	for _, line := range watched {
		if strings.Contains(line, expected) {
			return true
		}
	}
	return false
}

// Count the lines in a file, ignoring a trailing newline.
func CountLines(data []byte) int {
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return 0
	}
	return len(strings.Split(text, "\n"))
}

// A default config whose output files all land in a temp directory.
func GetTestConfig(t *testing.T) *config.Config {
	config_obj := config.GetDefaultConfig()
	config_obj.Logging.Level = "debug"
	config_obj.Logging.File = filepath.Join(t.TempDir(), "pipeowners.log")
	return config_obj
}
