/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package log

import (
	"fmt"
	"io"
	"log"
	"os"
)

type LogLevel int

const (
	LogPrefix     = "[go-avtp] "
	ErrorPrefix   = "[error] "
	WarningPrefix = "[warn] "
	InfoPrefix    = "[info] "
	DebugPrefix   = "[debug] "
	HelpLevels    = "Must be one of: error, warning, info, debug."
)

const (
	ErrorLevel LogLevel = iota
	WarningLevel
	InfoLevel
	DebugLevel
)

var levelNames = map[string]LogLevel{
	"error":   ErrorLevel,
	"warning": WarningLevel,
	"info":    InfoLevel,
	"debug":   DebugLevel,
}

func (l LogLevel) String() string {
	for name, level := range levelNames {
		if level == l {
			return name
		}
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// ErrLogLevel returned when a log level name is not known
type ErrLogLevel struct {
	Level string
}

func (e ErrLogLevel) Error() string {
	return fmt.Sprintf("Wrong log level %q. %s", e.Level, HelpLevels)
}

type Logger struct {
	level LogLevel
	*log.Logger
}

var logger = &Logger{
	level:  InfoLevel,
	Logger: log.New(os.Stderr, LogPrefix, log.LstdFlags),
}

func ParseLevel(strLevel string) (LogLevel, error) {
	level, ok := levelNames[strLevel]
	if !ok {
		return 0, ErrLogLevel{Level: strLevel}
	}
	return level, nil
}

func SetLevel(strLevel string) error {
	level, err := ParseLevel(strLevel)
	if err != nil {
		return err
	}
	logger.level = level
	return nil
}

func Level() LogLevel {
	return logger.level
}

// Init redirects the output and sets the level. Unlike SetLevel a wrong level is reported
// after the output is switched so the caller can log it.
func Init(out io.Writer, strLevel string) error {
	logger.SetOutput(out)
	return SetLevel(strLevel)
}

func logf(level LogLevel, prefix, format string, v ...interface{}) {
	if logger.level >= level {
		logger.Println(fmt.Sprintf(prefix+format, v...))
	}
}

func Error(format string, v ...interface{}) {
	logf(ErrorLevel, ErrorPrefix, format, v...)
}

func Warning(format string, v ...interface{}) {
	logf(WarningLevel, WarningPrefix, format, v...)
}

func Info(format string, v ...interface{}) {
	logf(InfoLevel, InfoPrefix, format, v...)
}

func Debug(format string, v ...interface{}) {
	logf(DebugLevel, DebugPrefix, format, v...)
}
