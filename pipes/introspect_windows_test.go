//go:build windows
// +build windows

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
package pipes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowsIntrospector(t *testing.T) {
	introspector := NewIntrospector(`\\.\pipe\`)

	// A live system always has some pipes.
	names, err := introspector.ListPipeNames()
	require.NoError(t, err)
	assert.NotEmpty(t, names)

	pid := uint32(os.Getpid())
	processes, err := introspector.ListProcesses()
	require.NoError(t, err)

	exe, err := os.Executable()
	require.NoError(t, err)

	found := false
	for _, p := range processes {
		if p.Pid == pid {
			found = true
			assert.True(t, strings.EqualFold(filepath.Base(exe), p.Name))
		}
	}
	assert.True(t, found)

	path, err := introspector.ProcessImagePath(pid)
	require.NoError(t, err)
	assert.True(t, strings.EqualFold(filepath.Base(exe), filepath.Base(path)))
}

func TestWindowsIntrospectorMissingPipe(t *testing.T) {
	introspector := NewIntrospector(`\\.\pipe\`)

	_, err := introspector.PipeServerPid("pipeowners_no_such_pipe")
	assert.Error(t, err)
}
