package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

// Log level constants define the severity hierarchy for filtering log output
const (
	DEBUG LogLevel = iota // DEBUG is the lowest severity level for detailed diagnostics
	INFO                  // INFO is for general informational messages
	WARN                  // WARN is for warning messages that don't prevent operation
	ERROR                 // ERROR is the highest severity for error conditions
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel converts a string to a LogLevel
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Logger provides structured logging with configurable levels
type Logger struct {
	mu     sync.Mutex
	level  LogLevel
	logger *log.Logger
	prefix string
}

// New creates a new Logger with the specified level
func New(level LogLevel, prefix string) *Logger {
	return &Logger{
		level:  level,
		logger: log.New(os.Stderr, "", log.LstdFlags),
		prefix: prefix,
	}
}

// NewWithWriter creates a new Logger with custom output writer
func NewWithWriter(level LogLevel, prefix string, w io.Writer) *Logger {
	return &Logger{
		level:  level,
		logger: log.New(w, "", log.LstdFlags),
		prefix: prefix,
	}
}

// SetLevel changes the log level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// shouldLog checks if a message at the given level should be logged
func (l *Logger) shouldLog(level LogLevel) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

// log writes a log message with the given level and fields
func (l *Logger) log(level LogLevel, msg string, fields map[string]interface{}) {
	if !l.shouldLog(level) {
		return
	}

	var sb strings.Builder

	if l.prefix != "" {
		sb.WriteString(l.prefix)
		sb.WriteString(" ")
	}

	sb.WriteString(level.String())
	sb.WriteString(": ")
	sb.WriteString(msg)

	if len(fields) > 0 {
		sb.WriteString(" |")
		for k, v := range fields {
			sb.WriteString(fmt.Sprintf(" %s=%v", k, v))
		}
	}

	l.logger.Println(sb.String())
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log(DEBUG, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log(INFO, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log(WARN, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log(ERROR, msg, fields)
}

// RefreshEvent represents a type of data refresh event
type RefreshEvent string

// Refresh event constants identify data pipeline events in log output
const (
	EventNativeRefresh      RefreshEvent = "native_refresh"       // EventNativeRefresh indicates a native data refresh cycle
	EventNativeRestore      RefreshEvent = "native_restore"       // EventNativeRestore indicates native data was restored from cache
	EventFeedRefresh        RefreshEvent = "feed_refresh"         // EventFeedRefresh indicates an external feed fetch
	EventRemoteConfigUpdate RefreshEvent = "remote_config_update" // EventRemoteConfigUpdate indicates a remote config change
)

// LogNativeRefresh logs the outcome of a native data refresh cycle (INFO level)
func (l *Logger) LogNativeRefresh(channels, liveEvents int, duration time.Duration) {
	l.Info("Native data refreshed", map[string]interface{}{
		"event":      EventNativeRefresh,
		"channels":   channels,
		"liveEvents": liveEvents,
		"duration":   duration.String(),
	})
}

// LogNativeRestore logs a restore of native data from the cached payload (WARN level)
func (l *Logger) LogNativeRestore(reason string) {
	l.Warn("Native data restored from cache", map[string]interface{}{
		"event":  EventNativeRestore,
		"reason": reason,
	})
}

// LogFeedRefresh logs the outcome of an external feed fetch (INFO level)
func (l *Logger) LogFeedRefresh(events int, fromCache bool) {
	l.Info("External feed refreshed", map[string]interface{}{
		"event":     EventFeedRefresh,
		"events":    events,
		"fromCache": fromCache,
	})
}

// LogRemoteConfigUpdate logs a remote config value change (INFO level)
func (l *Logger) LogRemoteConfigUpdate(key, value string) {
	l.Info("Remote config updated", map[string]interface{}{
		"event": EventRemoteConfigUpdate,
		"key":   key,
		"value": value,
	})
}
