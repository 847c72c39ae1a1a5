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
	"strings"
	"unicode"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Pipe names are chosen by whichever process created the pipe, so
// they may contain terminal control sequences. SanitizeTerminal
// replaces control characters and invalid UTF-8 with visible escapes:
//   - "hi\x1b[31mred" -> `hi\x1b[31mred`
//   - "bad:\xff"      -> `bad:\xff`
//
// Tabs are kept. Newlines are escaped too since a pipe name that
// breaks the line would forge tree entries.
func SanitizeTerminal(s string) string {
	idx := 0
	for idx < len(s) {
		r, size := utf8.DecodeRuneInString(s[idx:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		if r != '\t' && unicode.IsControl(r) {
			break
		}
		idx += size
	}
	if idx == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:idx])

	for idx < len(s) {
		r, size := utf8.DecodeRuneInString(s[idx:])
		switch {
		case r == utf8.RuneError && size == 1:
			appendEscapedByte(&b, s[idx])
			idx++
			continue

		case r != '\t' && unicode.IsControl(r):
			// unicode.IsControl only matches Latin-1 runes.
			appendEscapedByte(&b, byte(r))

		default:
			b.WriteString(s[idx : idx+size])
		}
		idx += size
	}

	return b.String()
}

func appendEscapedByte(b *strings.Builder, bt byte) {
	b.WriteString(`\x`)
	b.WriteByte(hexDigits[bt>>4])
	b.WriteByte(hexDigits[bt&0x0f])
}
