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
package goldie

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"www.velocidex.com/golang/pipeowners/json"
)

// Compares golden against fixtures/<filename>.golden. Run the tests
// with -update to rewrite the fixture.
func Assert(t *testing.T, filename string, golden []byte) {
	t.Helper()

	g := goldie.New(t, goldie.WithFixtureDir("fixtures"))
	g.Assert(t, filename, golden)
}

func AssertJson(t *testing.T, filename string, golden interface{}) {
	t.Helper()

	g := goldie.New(t, goldie.WithFixtureDir("fixtures"))
	g.Assert(t, filename, json.MustMarshalIndent(golden))
}
