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

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"www.velocidex.com/golang/pipeowners/pipes"
)

func RenderSummary(w io.Writer, records []*pipes.ProcessRecord) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "ProcessName", "Pipes"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	total := 0
	for _, record := range records {
		total += len(record.NamedPipes)
		table.Append([]string{
			humanize.Comma(int64(record.Pid)),
			SanitizeTerminal(record.Name),
			humanize.Comma(int64(len(record.NamedPipes))),
		})
	}
	table.SetFooter([]string{"", "Total", humanize.Comma(int64(total))})

	table.Render()
}
