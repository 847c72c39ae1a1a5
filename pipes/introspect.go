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

//go:generate mockgen -destination mock_pipes/introspector.go -package mock_pipes www.velocidex.com/golang/pipeowners/pipes Introspector

// One entry from a process list snapshot.
type ProcessEntry struct {
	Pid  uint32
	Name string
}

// The OS facilities needed to attribute pipes to processes.
type Introspector interface {
	// Names of all the pipes currently under the namespace root.
	ListPipeNames() ([]string, error)

	// Pid of the process serving the named pipe.
	PipeServerPid(name string) (uint32, error)

	// A point in time snapshot of all running processes.
	ListProcesses() ([]ProcessEntry, error)

	// Full path of the process executable.
	ProcessImagePath(pid uint32) (string, error)
}

// A process which serves at least one named pipe.
type ProcessRecord struct {
	Pid  uint32
	Name string
	Path string

	// In discovery order. The same name may appear more than once.
	NamedPipes []string
}
