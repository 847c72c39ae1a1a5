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
	"bytes"
	std_csv "encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAny(t *testing.T) {
	tests := []struct {
		Name        string
		Input       []interface{}
		Output      string
		AlwaysQuote bool
		NoEscape    bool
		UseCRLF     bool
	}{{
		Name:   "Minimal",
		Input:  []interface{}{1, "abc", "a b"},
		Output: "1,abc,a b\n",
	}, {
		Name:        "AlwaysQuote",
		Input:       []interface{}{uint32(100), "svchost.exe", `C:\Windows\svchost.exe`, "a;b"},
		AlwaysQuote: true,
		Output:      "100,\"svchost.exe\",\"C:\\Windows\\svchost.exe\",\"a;b\"\n",
	}, {
		Name:        "EmptyQuoted",
		Input:       []interface{}{4, ""},
		AlwaysQuote: true,
		Output:      "4,\"\"\n",
	}, {
		Name:   "NeedsQuotes",
		Input:  []interface{}{"a,b", " lead", `say "hi"`},
		Output: "\"a,b\",\" lead\",\"say \"\"hi\"\"\"\n",
	}, {
		Name:        "UnescapedQuotes",
		Input:       []interface{}{`say "hi"`},
		AlwaysQuote: true,
		NoEscape:    true,
		Output:      "\"say \"hi\"\"\n",
	}, {
		Name:        "CRLF",
		Input:       []interface{}{"a\nb", 2},
		AlwaysQuote: true,
		UseCRLF:     true,
		Output:      "\"a\r\nb\",2\r\n",
	}, {
		Name:   "Stringer",
		Input:  []interface{}{true},
		Output: "true\n",
	}}

	for _, tt := range tests {
		b := &bytes.Buffer{}
		w := NewWriter(b)
		w.AlwaysQuote = tt.AlwaysQuote
		w.EscapeQuotes = !tt.NoEscape
		w.UseCRLF = tt.UseCRLF

		err := w.WriteAny(tt.Input)
		require.NoError(t, err, tt.Name)
		w.Flush()
		require.NoError(t, w.Error(), tt.Name)

		assert.Equal(t, tt.Output, b.String(), tt.Name)
	}
}

func TestHeaderIsNotForcedQuoted(t *testing.T) {
	b := &bytes.Buffer{}
	w := NewWriter(b)
	w.AlwaysQuote = true

	require.NoError(t, w.Write([]string{"PID", "ProcessName", "ProcessPath", "NamedPipes"}))
	w.Flush()

	assert.Equal(t, "PID,ProcessName,ProcessPath,NamedPipes\n", b.String())
}

// Output with escaped quotes must be readable by a standard parser.
func TestRoundTrip(t *testing.T) {
	rows := [][]interface{}{
		{uint32(50), "a \"quoted\" name", `C:\x, y.exe`, "p1;p2"},
		{uint32(100), "plain", "", "multi\nline"},
	}

	b := &bytes.Buffer{}
	w := NewWriter(b)
	w.AlwaysQuote = true
	for _, row := range rows {
		require.NoError(t, w.WriteAny(row))
	}
	w.Flush()

	records, err := std_csv.NewReader(b).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"50", "a \"quoted\" name", `C:\x, y.exe`, "p1;p2"},
		{"100", "plain", "", "multi\nline"},
	}, records)
}
