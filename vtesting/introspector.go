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
package vtesting

import (
	"github.com/pkg/errors"
	"www.velocidex.com/golang/pipeowners/pipes"
)

var (
	fakeAccessDenied = errors.New("Access is denied.")
	fakePipeBusy     = errors.New("All pipe instances are busy.")
)

// An in memory Introspector. Pipes without an owner and processes
// without a path behave like objects we are not allowed to open.
type FakeIntrospector struct {
	Pipes     []string
	Owners    map[string]uint32
	Processes []pipes.ProcessEntry
	Paths     map[uint32]string

	ListError     error
	SnapshotError error

	// How often each capability was used.
	SnapshotCalls int
	PathCalls     map[uint32]int
}

func (self *FakeIntrospector) ListPipeNames() ([]string, error) {
	if self.ListError != nil {
		return nil, self.ListError
	}
	return append([]string{}, self.Pipes...), nil
}

func (self *FakeIntrospector) PipeServerPid(name string) (uint32, error) {
	pid, pres := self.Owners[name]
	if !pres {
		return 0, fakePipeBusy
	}
	return pid, nil
}

func (self *FakeIntrospector) ListProcesses() ([]pipes.ProcessEntry, error) {
	self.SnapshotCalls++
	if self.SnapshotError != nil {
		return nil, self.SnapshotError
	}
	return append([]pipes.ProcessEntry{}, self.Processes...), nil
}

func (self *FakeIntrospector) ProcessImagePath(pid uint32) (string, error) {
	if self.PathCalls == nil {
		self.PathCalls = make(map[uint32]int)
	}
	self.PathCalls[pid]++

	path, pres := self.Paths[pid]
	if !pres {
		return "", fakeAccessDenied
	}
	return path, nil
}
