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
package logging

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const max_memory_logs = 1000

var (
	memory_mu   sync.Mutex
	memory_logs []string
)

// Keeps the most recent log lines in memory so tests can inspect
// them.
type memoryHook struct{}

func (self *memoryHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (self *memoryHook) Fire(entry *logrus.Entry) error {
	line := fmt.Sprintf("[%s] <%v> %s",
		strings.ToUpper(entry.Level.String()),
		entry.Data["component"], entry.Message)

	memory_mu.Lock()
	defer memory_mu.Unlock()

	memory_logs = append(memory_logs, line)
	if len(memory_logs) > max_memory_logs {
		memory_logs = memory_logs[len(memory_logs)-max_memory_logs:]
	}
	return nil
}

func GetMemoryLogs() []string {
	memory_mu.Lock()
	defer memory_mu.Unlock()

	return append([]string{}, memory_logs...)
}

func ClearMemoryLogs() {
	memory_mu.Lock()
	defer memory_mu.Unlock()

	memory_logs = nil
}
