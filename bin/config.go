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
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"www.velocidex.com/golang/pipeowners/config"
)

var (
	config_command = app.Command(
		"config", "Manipulate the configuration.")
	config_show_command = config_command.Command(
		"show", "Show the effective configuration.")
	config_generate_command = config_command.Command(
		"generate", "Write a default configuration to stdout.")
)

func doShowConfig() {
	config_obj, err := load_config()
	kingpin.FatalIfError(err, "Unable to load config.")

	res, err := config.Encode(config_obj)
	kingpin.FatalIfError(err, "Unable to encode config.")

	fmt.Printf("%v", string(res))
}

func doGenerateConfig() {
	res, err := config.Encode(config.GetDefaultConfig())
	kingpin.FatalIfError(err, "Unable to encode config.")

	fmt.Printf("%v", string(res))
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case config_show_command.FullCommand():
			doShowConfig()

		case config_generate_command.FullCommand():
			doGenerateConfig()

		default:
			return false
		}
		return true
	})
}
