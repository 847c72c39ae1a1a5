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
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"www.velocidex.com/golang/pipeowners/config"
	"www.velocidex.com/golang/pipeowners/logging"
	"www.velocidex.com/golang/pipeowners/pipes"
	"www.velocidex.com/golang/pipeowners/utils"
)

type Options struct {
	Show bool
	Text string
	Json string
	Csv  string

	CsvEscapeQuotes bool
	Summary         bool
	Color           bool
}

// Console output is forced on when no file was requested.
func OptionsFromConfig(config_obj *config.Config) Options {
	output := config_obj.Output
	options := Options{
		Show:            output.Show,
		Text:            output.Text,
		Json:            output.Json,
		Csv:             output.Csv,
		CsvEscapeQuotes: output.CsvEscapeQuotes,
		Summary:         output.Summary,
		Color:           !output.NoColor && isatty.IsTerminal(os.Stdout.Fd()),
	}

	if options.Text == "" && options.Json == "" && options.Csv == "" {
		options.Show = true
	}

	return options
}

type ConsoleSink struct {
	out     io.Writer
	options Options
}

func (self *ConsoleSink) Write(records []*pipes.ProcessRecord) error {
	err := RenderTree(self.out, records, TreeOptions{
		Sanitize: true,
		Color:    self.options.Color,
	})
	if err != nil {
		return err
	}

	if self.options.Summary {
		RenderSummary(self.out, records)
	}
	return nil
}

// Writes a report into a file. Kind is the name shown to the user.
type FileSink struct {
	Kind   string
	Path   string
	render func(w io.Writer, records []*pipes.ProcessRecord) error
}

func (self *FileSink) Write(records []*pipes.ProcessRecord) (err error) {
	fd, err := os.OpenFile(self.Path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(utils.SinkOpenError, err.Error())
	}
	defer func() {
		close_err := fd.Close()
		if err == nil {
			err = close_err
		}
	}()

	return self.render(fd, records)
}

func NewTextSink(path string) *FileSink {
	return &FileSink{
		Kind: "text",
		Path: path,
		render: func(w io.Writer, records []*pipes.ProcessRecord) error {
			return RenderTree(w, records, TreeOptions{})
		},
	}
}

func NewJSONSink(path string) *FileSink {
	return &FileSink{
		Kind:   "JSON",
		Path:   path,
		render: WriteJSON,
	}
}

func NewCSVSink(path string, escape_quotes bool) *FileSink {
	return &FileSink{
		Kind: "CSV",
		Path: path,
		render: func(w io.Writer, records []*pipes.ProcessRecord) error {
			return WriteCSV(w, records, escape_quotes)
		},
	}
}

func (self Options) FileSinks() []*FileSink {
	result := []*FileSink{}
	if self.Text != "" {
		result = append(result, NewTextSink(self.Text))
	}
	if self.Json != "" {
		result = append(result, NewJSONSink(self.Json))
	}
	if self.Csv != "" {
		result = append(result, NewCSVSink(self.Csv, self.CsvEscapeQuotes))
	}
	return result
}

// Runs every enabled sink. A failing file sink is reported on the
// console and the remaining sinks still run. Returns the number of
// sinks that failed.
func Report(
	config_obj *config.Config,
	options Options,
	records []*pipes.ProcessRecord,
	console io.Writer) int {

	logger := logging.GetLogger(config_obj, &logging.ReportComponent)
	failed := 0

	if options.Show {
		sink := &ConsoleSink{out: console, options: options}
		err := sink.Write(records)
		if err != nil {
			logger.Error("Report: console: %v", err)
			failed++
		}
	}

	for _, sink := range options.FileSinks() {
		err := sink.Write(records)
		if err != nil {
			logger.Error("Report: %v sink %v: %v", sink.Kind, sink.Path, err)
			fmt.Fprintf(console, "[!] Error: Could not open file %s for writing\n",
				sink.Path)
			failed++
			continue
		}

		logger.Debug("Report: wrote %v records to %v", len(records), sink.Path)
		fmt.Fprintf(console, "[+] Results written to %s file: %s\n",
			sink.Kind, sink.Path)
	}

	return failed
}
