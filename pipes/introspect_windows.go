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
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

const (
	// QueryFullProcessImageName accepts at most this many characters.
	max_image_path = 32 * 1024
)

type WindowsIntrospector struct {
	root string
}

func NewIntrospector(root string) Introspector {
	return &WindowsIntrospector{root: root}
}

// Runs cb with a freshly opened handle. The handle is always released
// before returning so at most one handle is held at a time.
func withHandle(
	open func() (windows.Handle, error),
	close func(windows.Handle) error,
	cb func(h windows.Handle) error) error {

	h, err := open()
	if err != nil {
		return err
	}
	defer close(h)

	return cb(h)
}

func (self *WindowsIntrospector) ListPipeNames() ([]string, error) {
	pattern, err := windows.UTF16PtrFromString(self.root + "*")
	if err != nil {
		return nil, err
	}

	result := []string{}
	var data windows.Win32finddata

	err = withHandle(
		func() (windows.Handle, error) {
			return windows.FindFirstFile(pattern, &data)
		},
		windows.FindClose,
		func(h windows.Handle) error {
			for {
				result = append(result, windows.UTF16ToString(data.FileName[:]))

				err := windows.FindNextFile(h, &data)
				if err == windows.ERROR_NO_MORE_FILES {
					return nil
				}
				if err != nil {
					return err
				}
			}
		})

	// No pipes at all.
	if err == windows.ERROR_FILE_NOT_FOUND {
		return result, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "ListPipeNames %v", self.root)
	}
	return result, nil
}

func (self *WindowsIntrospector) PipeServerPid(name string) (uint32, error) {
	path, err := windows.UTF16PtrFromString(self.root + name)
	if err != nil {
		return 0, err
	}

	var pid uint32
	err = withHandle(
		func() (windows.Handle, error) {
			return windows.CreateFile(path,
				windows.GENERIC_READ,
				windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
				nil, windows.OPEN_EXISTING,
				windows.FILE_FLAG_OVERLAPPED, 0)
		},
		windows.CloseHandle,
		func(h windows.Handle) error {
			return windows.GetNamedPipeServerProcessId(h, &pid)
		})
	if err != nil {
		return 0, errors.Wrapf(err, "PipeServerPid %v", name)
	}
	return pid, nil
}

func (self *WindowsIntrospector) ListProcesses() ([]ProcessEntry, error) {
	result := []ProcessEntry{}

	err := withHandle(
		func() (windows.Handle, error) {
			return windows.CreateToolhelp32Snapshot(
				windows.TH32CS_SNAPPROCESS, 0)
		},
		windows.CloseHandle,
		func(h windows.Handle) error {
			var entry windows.ProcessEntry32
			entry.Size = uint32(unsafe.Sizeof(entry))

			err := windows.Process32First(h, &entry)
			for err == nil {
				result = append(result, ProcessEntry{
					Pid:  entry.ProcessID,
					Name: windows.UTF16ToString(entry.ExeFile[:]),
				})
				err = windows.Process32Next(h, &entry)
			}

			if err == windows.ERROR_NO_MORE_FILES {
				return nil
			}
			return err
		})
	if err != nil {
		return nil, errors.Wrap(err, "ListProcesses")
	}
	return result, nil
}

func (self *WindowsIntrospector) ProcessImagePath(pid uint32) (string, error) {
	var result string

	err := withHandle(
		func() (windows.Handle, error) {
			return windows.OpenProcess(
				windows.PROCESS_QUERY_INFORMATION|windows.PROCESS_VM_READ,
				false, pid)
		},
		windows.CloseHandle,
		func(h windows.Handle) error {
			// Most paths fit in MAX_PATH but long path aware
			// systems can return more.
			for size := uint32(windows.MAX_PATH); size <= max_image_path; size *= 2 {
				buffer := make([]uint16, size)
				length := size
				err := windows.QueryFullProcessImageName(h, 0, &buffer[0], &length)
				if err == windows.ERROR_INSUFFICIENT_BUFFER {
					continue
				}
				if err != nil {
					return err
				}
				result = windows.UTF16ToString(buffer[:length])
				return nil
			}
			return windows.ERROR_INSUFFICIENT_BUFFER
		})
	if err != nil {
		return "", errors.Wrapf(err, "ProcessImagePath %v", pid)
	}
	return result, nil
}
