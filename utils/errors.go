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
package utils

import errors "github.com/go-errors/errors"

var (
	// The pipe namespace could not be listed at all.
	NamespaceUnreadableError = errors.New("NamespaceUnreadableError")

	// Pipe discovery is only implemented on Windows.
	UnsupportedPlatformError = errors.New("UnsupportedPlatformError")

	InvalidConfigError = errors.New("InvalidConfigError")

	// A report file could not be created.
	SinkOpenError = errors.New("SinkOpenError")
)
