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
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kingpin/v2"
	"www.velocidex.com/golang/pipeowners/config"
	"www.velocidex.com/golang/pipeowners/logging"
	"www.velocidex.com/golang/pipeowners/pipes"
	"www.velocidex.com/golang/pipeowners/reporting"
)

const banner = "Find Processes With Named Pipes"

var (
	pipes_command = app.Command(
		"pipes", "List every named pipe grouped by its server process.").Default()

	pipes_show_set bool
	pipes_show     = pipes_command.Flag("show", "Print the results to the console.").
			Short('s').IsSetByUser(&pipes_show_set).Bool()

	pipes_text = pipes_command.Flag("text", "Write the results to this text file.").
			Short('t').String()

	pipes_json = pipes_command.Flag("json", "Write the results to this JSON file.").
			Short('j').String()

	pipes_csv = pipes_command.Flag("csv", "Write the results to this CSV file.").
			Short('c').String()

	pipes_debug = pipes_command.Flag("debug", "Enable debug logging.").
			Short('d').Bool()

	pipes_summary_set bool
	pipes_summary     = pipes_command.Flag("summary",
		"Print a table with the number of pipes per process.").
		IsSetByUser(&pipes_summary_set).Bool()

	pipes_nocolor_set bool
	pipes_nocolor     = pipes_command.Flag("nocolor", "Disable coloring").
				IsSetByUser(&pipes_nocolor_set).Bool()

	pipes_root = pipes_command.Flag("pipe_root",
		"The directory holding the named pipes.").String()

	pipes_on_namespace_error = pipes_command.Flag("on_namespace_error",
		"What to do when the pipe directory can not be listed.").
		Enum("fatal", "empty")

	pipes_csv_escape_set bool
	pipes_csv_escape     = pipes_command.Flag("csv_escape_quotes",
		"Double quote characters inside CSV fields.").
		Default("true").IsSetByUser(&pipes_csv_escape_set).Bool()
)

// Command line flags override the config file only when given.
func applyPipesFlags(config_obj *config.Config) error {
	if pipes_show_set {
		config_obj.Output.Show = *pipes_show
	}
	if *pipes_text != "" {
		config_obj.Output.Text = *pipes_text
	}
	if *pipes_json != "" {
		config_obj.Output.Json = *pipes_json
	}
	if *pipes_csv != "" {
		config_obj.Output.Csv = *pipes_csv
	}
	if pipes_summary_set {
		config_obj.Output.Summary = *pipes_summary
	}
	if pipes_nocolor_set {
		config_obj.Output.NoColor = *pipes_nocolor
	}
	if pipes_csv_escape_set {
		config_obj.Output.CsvEscapeQuotes = *pipes_csv_escape
	}
	if *pipes_root != "" {
		config_obj.Pipes.Root = *pipes_root
	}
	if *pipes_on_namespace_error != "" {
		config_obj.Pipes.OnNamespaceError = *pipes_on_namespace_error
	}
	if *pipes_debug {
		config_obj.Logging.Level = "debug"
	}
	return nil
}

func doPipes() error {
	if *pipes_debug {
		logging.SuppressLogging = false
	}

	config_obj, err := load_config(applyPipesFlags)
	if err != nil {
		return err
	}

	logger := logging.GetLogger(config_obj, &logging.ToolComponent)
	logger.Debug("Using pipe root %v", config_obj.Pipes.Root)

	fmt.Fprintln(os.Stderr, banner)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	records, _, err := pipes.Collect(ctx, config_obj,
		pipes.NewIntrospector(config_obj.Pipes.Root))
	if err != nil {
		return err
	}

	failed := reporting.Report(config_obj,
		reporting.OptionsFromConfig(config_obj), records, os.Stdout)
	if failed > 0 {
		logger.Warn("%v outputs could not be written", failed)
	}
	return nil
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		if command == pipes_command.FullCommand() {
			err := doPipes()
			kingpin.FatalIfError(err, "pipes")
			return true
		}
		return false
	})
}
