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
	"strings"

	"www.velocidex.com/golang/pipeowners/constants"
	"www.velocidex.com/golang/pipeowners/csv"
	"www.velocidex.com/golang/pipeowners/pipes"
)

var csvHeader = []string{
	constants.CSV_HEADER_PID,
	constants.CSV_HEADER_PROCESS_NAME,
	constants.CSV_HEADER_PROCESS_PATH,
	constants.CSV_HEADER_NAMED_PIPES,
}

// One row per process. All the pipes of a process share a single
// cell. When escape_quotes is false embedded quotes are written as
// is, which some readers will not parse.
func WriteCSV(w io.Writer, records []*pipes.ProcessRecord, escape_quotes bool) error {
	writer := csv.NewWriter(w)
	writer.AlwaysQuote = true
	writer.EscapeQuotes = escape_quotes

	err := writer.Write(csvHeader)
	if err != nil {
		return err
	}

	for _, record := range records {
		err = writer.WriteAny([]interface{}{
			record.Pid,
			record.Name,
			record.Path,
			strings.Join(record.NamedPipes, constants.CSV_PIPE_SEPARATOR),
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
