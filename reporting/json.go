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
	"io"

	"github.com/Velocidex/ordereddict"
	"www.velocidex.com/golang/pipeowners/constants"
	"www.velocidex.com/golang/pipeowners/json"
	"www.velocidex.com/golang/pipeowners/pipes"
)

func recordToDict(record *pipes.ProcessRecord) *ordereddict.Dict {
	named_pipes := make([]string, 0, len(record.NamedPipes))
	for _, name := range record.NamedPipes {
		named_pipes = append(named_pipes, constants.PIPE_DISPLAY_PREFIX+name)
	}

	return ordereddict.NewDict().
		Set("pid", record.Pid).
		Set("name", record.Name).
		Set("path", record.Path).
		Set("namedPipes", named_pipes)
}

// Writes {"processes": [...]} with keys in a stable order.
func WriteJSON(w io.Writer, records []*pipes.ProcessRecord) error {
	processes := make([]*ordereddict.Dict, 0, len(records))
	for _, record := range records {
		processes = append(processes, recordToDict(record))
	}

	serialized, err := json.MarshalIndent(
		ordereddict.NewDict().Set("processes", processes))
	if err != nil {
		return err
	}

	_, err = w.Write(append(serialized, '\n'))
	return err
}
