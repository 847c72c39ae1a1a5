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
package reporting

import (
	"fmt"
	"io"

	ct "github.com/daviddengcn/go-colortext"
	"www.velocidex.com/golang/pipeowners/constants"
	"www.velocidex.com/golang/pipeowners/pipes"
)

type TreeOptions struct {
	// Escape control characters in strings we do not control.
	Sanitize bool

	// Highlight the per process header. The color codes go to the
	// terminal directly so only set this when w is the terminal.
	Color bool
}

type treePrinter struct {
	w       io.Writer
	options TreeOptions
	err     error
}

func (self *treePrinter) printf(format string, args ...interface{}) {
	if self.err != nil {
		return
	}

	if self.options.Sanitize {
		for i, arg := range args {
			str, ok := arg.(string)
			if ok {
				args[i] = SanitizeTerminal(str)
			}
		}
	}

	_, self.err = fmt.Fprintf(self.w, format, args...)
}

func (self *treePrinter) header(pid uint32) {
	if self.options.Color {
		ct.Foreground(ct.Green, true)
		defer ct.ResetColor()
	}
	self.printf("[+] PID %d:", pid)
}

// Render one block per process:
//
//	[+] PID 4:
//	  ├── ProcessName: System
//	  ├── Path: - (Access Denied)
//	  ├── Named pipes:
//	  │  ├──  \\PIPE\InitShutdown
//	  │  └────
//	  └────
func RenderTree(w io.Writer, records []*pipes.ProcessRecord, options TreeOptions) error {
	printer := &treePrinter{w: w, options: options}

	for _, record := range records {
		printer.header(record.Pid)
		printer.printf("\n")
		printer.printf("  ├── ProcessName: %s\n", record.Name)
		printer.printf("  ├── Path: %s\n", record.Path)
		printer.printf("  ├── Named pipes:\n")
		for _, name := range record.NamedPipes {
			printer.printf("  │  ├──  %s%s\n", constants.PIPE_DISPLAY_PREFIX, name)
		}
		printer.printf("  │  └────\n")
		printer.printf("  └────\n")
	}

	return printer.err
}
