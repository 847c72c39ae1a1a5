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
package constants

const (
	VERSION = "0.1.0"

	// All named pipes live under this directory on the local machine.
	PIPE_ROOT = `\\.\pipe\`

	// Reports show each pipe with this prefix.
	PIPE_DISPLAY_PREFIX = `\\PIPE\`

	// Placeholders used when a process can not be identified.
	UNKNOWN_PROCESS_NAME = "- (Unknown)"
	ACCESS_DENIED_PATH   = "- (Access Denied)"

	// What to do when the pipe namespace can not be listed.
	NAMESPACE_POLICY_FATAL = "fatal"
	NAMESPACE_POLICY_EMPTY = "empty"

	CSV_HEADER_PID          = "PID"
	CSV_HEADER_PROCESS_NAME = "ProcessName"
	CSV_HEADER_PROCESS_PATH = "ProcessPath"
	CSV_HEADER_NAMED_PIPES  = "NamedPipes"
	CSV_PIPE_SEPARATOR      = ";"
)
