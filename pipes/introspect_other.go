//go:build !windows
// +build !windows

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
	"runtime"

	"github.com/pkg/errors"
	"www.velocidex.com/golang/pipeowners/utils"
)

// Named pipe discovery is only supported on Windows. This stub lets
// the rest of the tool build and be tested elsewhere.
type UnsupportedIntrospector struct{}

func NewIntrospector(root string) Introspector {
	return UnsupportedIntrospector{}
}

func (self UnsupportedIntrospector) ListPipeNames() ([]string, error) {
	return nil, errors.Wrap(utils.UnsupportedPlatformError, runtime.GOOS)
}

func (self UnsupportedIntrospector) PipeServerPid(name string) (uint32, error) {
	return 0, errors.Wrap(utils.UnsupportedPlatformError, runtime.GOOS)
}

func (self UnsupportedIntrospector) ListProcesses() ([]ProcessEntry, error) {
	return nil, errors.Wrap(utils.UnsupportedPlatformError, runtime.GOOS)
}

func (self UnsupportedIntrospector) ProcessImagePath(pid uint32) (string, error) {
	return "", errors.Wrap(utils.UnsupportedPlatformError, runtime.GOOS)
}
