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
/*
  Package pipes finds the processes serving named pipes.

  The pipeline is:

  1. List every name under the pipe namespace root.
  2. Open each pipe and ask the OS for its server process id. Pipes
     we can not open are skipped.
  3. Group pipes by pid. The first time a pid is seen its executable
     name and path are resolved exactly once.
  4. Emit one ProcessRecord per pid in ascending pid order.

  All OS access goes through the Introspector interface so the
  pipeline can be exercised on any platform.
*/
package pipes
