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
package pipes

import (
	"github.com/google/btree"
)

// Anything which can name a process. IdentityResolver is the real
// implementation.
type ProcessResolver interface {
	Resolve(pid uint32) (name string, path string)
}

// Groups pipes by their server pid. Records are kept in a btree
// ordered by pid so they come out sorted regardless of discovery
// order.
type Aggregator struct {
	resolver ProcessResolver
	index    *btree.BTreeG[*ProcessRecord]
}

func NewAggregator(resolver ProcessResolver) *Aggregator {
	return &Aggregator{
		resolver: resolver,
		index: btree.NewG(16, func(a, b *ProcessRecord) bool {
			return a.Pid < b.Pid
		}),
	}
}

// Adds a pipe to its owner's record. The process is only resolved
// the first time its pid is seen.
func (self *Aggregator) Add(pid uint32, pipe_name string) {
	record, pres := self.index.Get(&ProcessRecord{Pid: pid})
	if !pres {
		name, path := self.resolver.Resolve(pid)
		record = &ProcessRecord{
			Pid:  pid,
			Name: name,
			Path: path,
		}
		self.index.ReplaceOrInsert(record)
	}

	record.NamedPipes = append(record.NamedPipes, pipe_name)
}

func (self *Aggregator) Len() int {
	return self.index.Len()
}

// All records in ascending pid order.
func (self *Aggregator) Records() []*ProcessRecord {
	result := make([]*ProcessRecord, 0, self.index.Len())
	self.index.Ascend(func(item *ProcessRecord) bool {
		result = append(result, item)
		return true
	})
	return result
}
