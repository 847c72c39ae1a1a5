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
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/mattn/go-isatty"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"www.velocidex.com/golang/pipeowners/config"
)

var (
	GenericComponent = "PipeOwners"
	ToolComponent    = "PipeOwners Tool"
	PipesComponent   = "PipeOwners Pipes"
	ReportComponent  = "PipeOwners Report"

	// When set only warnings and errors reach stderr. The log file
	// (if any) still receives everything.
	SuppressLogging = false

	mu      sync.Mutex
	Manager *LogManager
)

type LogManager struct {
	logger *logrus.Logger
}

// Drops the current manager so the next GetLogger() builds a fresh one.
func (self *LogManager) Reset() {
	mu.Lock()
	defer mu.Unlock()
	Manager = nil
}

type LogContext struct {
	*logrus.Entry
}

func (self *LogContext) Debug(format string, args ...interface{}) {
	self.Entry.Debugf(format, args...)
}

func (self *LogContext) Info(format string, args ...interface{}) {
	self.Entry.Infof(format, args...)
}

func (self *LogContext) Warn(format string, args ...interface{}) {
	self.Entry.Warnf(format, args...)
}

func (self *LogContext) Error(format string, args ...interface{}) {
	self.Entry.Errorf(format, args...)
}

func (self *LogContext) LogWithLevel(level string, format string, args ...interface{}) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		self.Debug(format, args...)
	case "WARN", "WARNING":
		self.Warn(format, args...)
	case "ERROR":
		self.Error(format, args...)
	default:
		self.Info(format, args...)
	}
}

var levelColors = map[logrus.Level]color.Color{
	logrus.PanicLevel: color.Red,
	logrus.FatalLevel: color.Red,
	logrus.ErrorLevel: color.Red,
	logrus.WarnLevel:  color.Yellow,
	logrus.InfoLevel:  color.Green,
	logrus.DebugLevel: color.Gray,
}

// Formats log lines for the console.
type Formatter struct {
	Color bool
}

func (self *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}

	levelText := strings.ToUpper(entry.Level.String())
	if self.Color {
		c, pres := levelColors[entry.Level]
		if pres {
			levelText = c.Text(levelText)
		}
	}
	fmt.Fprintf(b, "[%s] %v ", levelText, entry.Time.Format(time.RFC3339))

	component, pres := entry.Data["component"]
	if pres {
		fmt.Fprintf(b, "<%v> ", component)
	}
	b.WriteString(strings.TrimRight(entry.Message, "\r\n"))
	b.WriteString("\n")

	return b.Bytes(), nil
}

func newLogManager(config_obj *config.Config) (*LogManager, error) {
	level := logrus.InfoLevel
	if config_obj != nil && config_obj.Logging.Level != "" {
		parsed, err := logrus.ParseLevel(config_obj.Logging.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	logger := logrus.New()
	logger.SetLevel(level)

	// All output goes through the hooks below.
	logger.SetOutput(ioutil.Discard)

	stderr_map := lfshook.WriterMap{
		logrus.PanicLevel: os.Stderr,
		logrus.FatalLevel: os.Stderr,
		logrus.ErrorLevel: os.Stderr,
		logrus.WarnLevel:  os.Stderr,
	}
	if !SuppressLogging {
		stderr_map[logrus.InfoLevel] = os.Stderr
		stderr_map[logrus.DebugLevel] = os.Stderr
	}
	use_color := isatty.IsTerminal(os.Stderr.Fd()) &&
		(config_obj == nil || !config_obj.Output.NoColor)
	logger.AddHook(lfshook.NewHook(stderr_map, &Formatter{Color: use_color}))

	if config_obj != nil && config_obj.Logging.File != "" {
		path_map := lfshook.PathMap{}
		for _, l := range logrus.AllLevels {
			path_map[l] = config_obj.Logging.File
		}
		logger.AddHook(lfshook.NewHook(path_map, &logrus.JSONFormatter{}))
	}

	logger.AddHook(&memoryHook{})

	return &LogManager{logger: logger}, nil
}

// Initialize the logging from the loaded config. This replaces any
// previously installed manager.
func InitLogging(config_obj *config.Config) error {
	manager, err := newLogManager(config_obj)
	if err != nil {
		return err
	}

	mu.Lock()
	Manager = manager
	mu.Unlock()

	return nil
}

func GetLogger(config_obj *config.Config, component *string) *LogContext {
	mu.Lock()
	defer mu.Unlock()

	if Manager == nil {
		manager, err := newLogManager(config_obj)
		if err != nil {
			// An invalid level in the config falls back to the
			// defaults.
			manager, _ = newLogManager(nil)
		}
		Manager = manager
	}

	return &LogContext{
		Entry: Manager.logger.WithField("component", *component),
	}
}
