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
	"www.velocidex.com/golang/pipeowners/constants"
	"www.velocidex.com/golang/pipeowners/logging"
)

// Resolves the executable name and path of a process. Lookups never
// fail: a placeholder is returned instead.
type IdentityResolver struct {
	introspector Introspector
	logger       *logging.LogContext
}

func NewIdentityResolver(
	introspector Introspector,
	logger *logging.LogContext) *IdentityResolver {
	return &IdentityResolver{
		introspector: introspector,
		logger:       logger,
	}
}

// Takes a new process snapshot and looks for pid in it.
func (self *IdentityResolver) Name(pid uint32) string {
	processes, err := self.introspector.ListProcesses()
	if err != nil {
		self.logger.Debug("IdentityResolver: process snapshot failed: %v", err)
		return constants.UNKNOWN_PROCESS_NAME
	}

	for _, p := range processes {
		if p.Pid == pid {
			return p.Name
		}
	}
	return constants.UNKNOWN_PROCESS_NAME
}

func (self *IdentityResolver) Path(pid uint32) string {
	path, err := self.introspector.ProcessImagePath(pid)
	if err != nil {
		self.logger.Debug("IdentityResolver: %v", err)
		return constants.ACCESS_DENIED_PATH
	}
	return path
}

func (self *IdentityResolver) Resolve(pid uint32) (name string, path string) {
	return self.Name(pid), self.Path(pid)
}
