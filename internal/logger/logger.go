// Package logger provides tagged console logging, optionally teed to a
// run-scoped log file.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"
)

// logFile, when set by Init, receives a copy of all output.
var logFile *os.File

// Init tees all subsequent log output to the given file in addition to
// stdout. The file is truncated each run. Returns a close func.
func Init(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	logFile = f
	return func() {
		logFile = nil
		f.Close()
	}, nil
}

func out() io.Writer {
	if logFile != nil {
		return io.MultiWriter(os.Stdout, logFile)
	}
	return os.Stdout
}

func write(level, tag, msg string) {
	fmt.Fprintf(out(), "%s - %s - [%s] %s\n", time.Now().UTC().Format("2006-01-02 15:04:05"), level, tag, msg)
}

// Info logs an informational message.
func Info(tag, msg string) { write("INFO", tag, msg) }

// Success logs a completed step.
func Success(tag, msg string) { write("OK", tag, msg) }

// Warn logs a warning.
func Warn(tag, msg string) { write("WARN", tag, msg) }

// Error logs an error.
func Error(tag, msg string) { write("ERROR", tag, msg) }

// Banner prints the startup banner.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Fprintf(out(), "===== BC Mercantile %s Starting =====\n", version)
}

// Section prints a section divider.
func Section(name string) {
	fmt.Fprintf(out(), "--- %s ---\n", name)
}

// Stats prints a key/value statistic.
func Stats(key string, value interface{}) {
	fmt.Fprintf(out(), "    %s: %v\n", key, value)
}
