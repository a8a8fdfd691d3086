// Package log provides the leveled logger used for tracing bus traffic.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

type Logger interface {
	Info(...any)
	Warn(...any)
	Error(...any)
	Debug(...any)
	Print(Level, ...any)
}

type Level string

const (
	Info  Level = "Info"
	Warn  Level = "Warn"
	Error Level = "Error"
	Debug Level = "Debug"
)

func DefaultFormatFunc(level, s string) string {
	return fmt.Sprintf("[%s] [%s] %s", time.Now().Format(time.DateTime), level, s)
}

type SimpleLogger struct {
	output     io.Writer
	formatFunc func(level, s string) string
	debug      bool
	color      bool
}

func NewLogger() *SimpleLogger {
	return &SimpleLogger{
		output:     os.Stderr,
		formatFunc: DefaultFormatFunc,
	}
}

func (s *SimpleLogger) SetOutput(w io.Writer) {
	if w != nil {
		s.output = w
	} else {
		s.output = io.Discard
	}
}

func (s *SimpleLogger) SetDebug(debug bool) {
	s.debug = debug
}

func (s *SimpleLogger) SetColor(c bool) {
	s.color = c
}

func (s *SimpleLogger) print(level Level, str string) {
	str = strings.TrimSpace(str)
	name := string(level)
	if s.color {
		switch level {
		case Info:
			name = color.New(color.FgGreen).Sprint(name)
		case Warn:
			name = color.New(color.FgYellow).Sprint(name)
		case Error:
			name = color.New(color.FgRed).Sprint(name)
		case Debug:
			name = color.New(color.FgBlue).Sprint(name)
		}
	}
	fmt.Fprintln(s.output, s.formatFunc(name, str))
}

func (s *SimpleLogger) Print(level Level, a ...any) {
	if level == Debug && !s.debug {
		return
	}
	s.print(level, fmt.Sprint(a...))
}

func (s *SimpleLogger) Info(a ...any) {
	s.print(Info, fmt.Sprint(a...))
}

func (s *SimpleLogger) Warn(a ...any) {
	s.print(Warn, fmt.Sprint(a...))
}

func (s *SimpleLogger) Error(a ...any) {
	s.print(Error, fmt.Sprint(a...))
}

func (s *SimpleLogger) Debug(a ...any) {
	if s.debug {
		s.print(Debug, fmt.Sprint(a...))
	}
}
