// Package ui owns terminal output: leveled, lipgloss-styled logging and the
// interactive prompts used by destructive operations.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelDebug
	LogLevelDebugVerbose
)

// Options configures the Logger.
type Options struct {
	// Out is where we print user-facing logs.
	// In most cases this should be os.Stdout.
	Out io.Writer

	// LogLevel controls the amount of logs printed to stdout.
	// error < info < warn < debug < debugVerbose
	LogLevel LogLevel

	// Component identifies the source of log messages (e.g., "meetxctl:migrate").
	// If empty, no component tag is included in log output.
	Component string
}

// Logger is the stdout logger.
type Logger struct {
	mu        sync.Mutex
	out       io.Writer
	style     styles
	component string
	logLevel  LogLevel
}

// styles for log levels and the banner box.
type styles struct {
	logInfo  lipgloss.Style
	logWarn  lipgloss.Style
	logError lipgloss.Style
	logDebug lipgloss.Style
	banner   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		logInfo:  lipgloss.NewStyle(),
		logWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange-ish
		logError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		logDebug: lipgloss.NewStyle().Faint(true),
		banner:   lipgloss.NewStyle().Bold(true).Border(lipgloss.NormalBorder()).Padding(0, 1).Margin(1, 0),
	}
}

// New creates a new Logger.
func New(opts Options) *Logger {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Logger{
		out:       opts.Out,
		style:     defaultStyles(),
		component: opts.Component,
		logLevel:  opts.LogLevel,
	}
}

func (l *Logger) SetLogLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logLevel = level
}

func (l *Logger) SetComponent(component string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.component = component
}

func (l *Logger) Info(format string, args ...any) {
	l.log(LogLevelInfo, l.style.logInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.log(LogLevelWarn, l.style.logWarn, "WARN: "+format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log(LogLevelError, l.style.logError, "ERROR: "+format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.log(LogLevelDebug, l.style.logDebug, format, args...)
}

func (l *Logger) DebugVerbose(format string, args ...any) {
	l.log(LogLevelDebugVerbose, l.style.logDebug, format, args...)
}

// Banner prints a bold bordered title box.
func (l *Logger) Banner(title string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, l.style.banner.Render(title))
}

// Spacer prints an empty line, used to separate prompt blocks from logs.
func (l *Logger) Spacer() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out)
}

func (l *Logger) log(level LogLevel, style lipgloss.Style, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level > l.logLevel {
		return
	}

	line := fmt.Sprintf(format, args...)
	if l.component != "" {
		line = "[" + l.component + "] " + line
	}
	line = strings.TrimRight(line, "\n")
	fmt.Fprintln(l.out, style.Render(line))
}
