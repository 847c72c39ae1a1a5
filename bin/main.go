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
	"os"

	"github.com/alecthomas/kingpin/v2"
	"www.velocidex.com/golang/pipeowners/config"
	"www.velocidex.com/golang/pipeowners/logging"
)

type CommandHandler func(command string) bool

var (
	app = kingpin.New("pipeowners",
		"Find processes with named pipes.")

	config_path = app.Flag("config", "The configuration file.").Short('C').
			Envar("PIPEOWNERS_CONFIG").String()

	logging_flag = app.Flag(
		"log_file", "Write logs to this file as JSON lines.").String()

	verbose_flag = app.Flag(
		"verbose", "Enabled verbose logging.").Short('v').
		Default("false").Bool()

	command_handlers []CommandHandler
)

// Load the config file (or the defaults) and let the command line
// override it.
func load_config(mutators ...func(config_obj *config.Config) error) (
	*config.Config, error) {
	loader := new(config.Loader).
		WithFileLoader(*config_path).
		WithDefaultLoader().
		WithLogFile(*logging_flag)

	for _, mutator := range mutators {
		loader = loader.WithConfigMutator("CommandLine", mutator)
	}

	config_obj, err := loader.LoadAndValidate()
	if err != nil {
		return nil, err
	}

	// Initialize the logging now that we have loaded the config.
	err = logging.InitLogging(config_obj)
	if err != nil {
		return nil, err
	}

	return config_obj, nil
}

func main() {
	app.HelpFlag.Short('h')
	app.UsageTemplate(kingpin.CompactUsageTemplate)
	args := os.Args[1:]

	command := kingpin.MustParse(app.Parse(args))

	if !*verbose_flag {
		logging.SuppressLogging = true
		if logging.Manager != nil {
			logging.Manager.Reset()
		}
	}

	for _, command_handler := range command_handlers {
		if command_handler(command) {
			break
		}
	}
}
