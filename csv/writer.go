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
package csv

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Writer struct {
	Comma   rune // Field delimiter (set to ',' by NewWriter)
	UseCRLF bool // True to use \r\n as the line terminator

	// Enclose every text field in quotes, not just those that
	// need it.
	AlwaysQuote bool

	// Double embedded quote characters inside quoted fields.
	EscapeQuotes bool

	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Comma:        ',',
		EscapeQuotes: true,
		w:            bufio.NewWriter(w),
	}
}

// Write a row of plain string fields. Fields are only quoted when
// needed regardless of AlwaysQuote. This is used for the header row.
func (self *Writer) Write(record []string) error {
	for n, field := range record {
		if n > 0 {
			if _, err := self.w.WriteRune(self.Comma); err != nil {
				return err
			}
		}

		err := self.writeField(field, self.fieldNeedsQuotes(field))
		if err != nil {
			return err
		}
	}
	return self.endLine()
}

// Write a row of typed values. Integers are written bare, everything
// else is converted to a string and quoted according to AlwaysQuote.
func (self *Writer) WriteAny(record []interface{}) error {
	for n, item := range record {
		if n > 0 {
			if _, err := self.w.WriteRune(self.Comma); err != nil {
				return err
			}
		}

		var err error
		switch t := item.(type) {
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64:
			_, err = fmt.Fprintf(self.w, "%d", t)

		case string:
			err = self.writeField(t,
				self.AlwaysQuote || self.fieldNeedsQuotes(t))

		default:
			str := fmt.Sprintf("%v", t)
			err = self.writeField(str,
				self.AlwaysQuote || self.fieldNeedsQuotes(str))
		}
		if err != nil {
			return err
		}
	}
	return self.endLine()
}

func (self *Writer) writeField(field string, quote bool) error {
	if !quote {
		_, err := self.w.WriteString(field)
		return err
	}

	if err := self.w.WriteByte('"'); err != nil {
		return err
	}

	for len(field) > 0 {
		// Search for special characters.
		i := strings.IndexAny(field, "\"\r\n")
		if i < 0 {
			i = len(field)
		}

		// Copy verbatim everything before the special character.
		if _, err := self.w.WriteString(field[:i]); err != nil {
			return err
		}
		field = field[i:]

		// Encode the special character.
		if len(field) > 0 {
			var err error
			switch field[0] {
			case '"':
				if self.EscapeQuotes {
					_, err = self.w.WriteString(`""`)
				} else {
					err = self.w.WriteByte('"')
				}
			case '\r':
				if !self.UseCRLF {
					err = self.w.WriteByte('\r')
				}
			case '\n':
				if self.UseCRLF {
					_, err = self.w.WriteString("\r\n")
				} else {
					err = self.w.WriteByte('\n')
				}
			}
			field = field[1:]
			if err != nil {
				return err
			}
		}
	}
	return self.w.WriteByte('"')
}

func (self *Writer) endLine() error {
	var err error
	if self.UseCRLF {
		_, err = self.w.WriteString("\r\n")
	} else {
		err = self.w.WriteByte('\n')
	}
	return err
}

// Flush writes any buffered data to the underlying io.Writer.
// To check if an error occurred during the Flush, call Error.
func (self *Writer) Flush() {
	self.w.Flush()
}

// Error reports any error that has occurred during a previous Write
// or Flush.
func (self *Writer) Error() error {
	_, err := self.w.Write(nil)
	return err
}

// fieldNeedsQuotes reports whether our field must be enclosed in
// quotes. Fields with a Comma, fields with a quote or newline, and
// fields which start with a space must be enclosed in quotes.
func (self *Writer) fieldNeedsQuotes(field string) bool {
	if field == "" {
		return false
	}
	if field == `\.` || strings.ContainsRune(field, self.Comma) ||
		strings.ContainsAny(field, "\"\r\n") {
		return true
	}

	r1, _ := utf8.DecodeRuneInString(field)
	return unicode.IsSpace(r1)
}
