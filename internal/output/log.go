// Package output provides terminal output utilities.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Level labels written in front of every log line.
const (
	LabelVerbose = "[VERBOSE]"
	LabelInfo    = "[INFO]"
	LabelWarn    = "[WARN]"
	LabelError   = "[ERROR]"
)

// logger is the global logger instance.
var logger *log.Logger

// out receives plain, unlabelled output.
var out io.Writer = os.Stdout

func init() {
	SetupLogging(LogConfig{})
}

// LogConfig holds the logging settings for a run.
type LogConfig struct {
	// Verbose enables [VERBOSE] lines.
	Verbose bool

	// Writer is the destination for log and plain output. Defaults to stdout.
	Writer io.Writer
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	out = w

	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetStyles(levelStyles())
}

// levelStyles renders levels as bracketed labels instead of the
// abbreviated, colored defaults.
func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().SetString(LabelVerbose)
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().SetString(LabelInfo)
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString(LabelWarn)
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString(LabelError).Foreground(ColorBoldRed)
	return styles
}

// IsVerbose reports whether [VERBOSE] lines are written.
func IsVerbose() bool {
	return logger.GetLevel() <= log.DebugLevel
}

// Debug logs a [VERBOSE] message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Print writes msg without a label.
func Print(msg string) {
	fmt.Fprint(out, msg)
}

// Println writes msg and a newline without a label.
func Println(msg string) {
	fmt.Fprintln(out, msg)
}
