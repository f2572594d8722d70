// Package logger provides leveled structured logging for the HTTP
// surface of Academia Records Hub. Entries are JSON in production and
// key=value text in development.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// LEVELS AND FORMATS
// ══════════════════════════════════════════════════════════════════════════════

// Level represents the severity of a log message.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general operational information.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level. Unknown values fall back to
// LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Format selects the output encoding.
type Format int

const (
	// FormatJSON emits one JSON object per line.
	FormatJSON Format = iota
	// FormatText emits a human-readable key=value line.
	FormatText
)

// ══════════════════════════════════════════════════════════════════════════════
// FIELDS
// ══════════════════════════════════════════════════════════════════════════════

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// Generic field constructors.
func String(key, value string) Field          { return Field{Key: key, Value: value} }
func Int(key string, value int) Field         { return Field{Key: key, Value: value} }
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }
func Any(key string, value any) Field         { return Field{Key: key, Value: value} }

// Err creates an error field.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Domain field constructors, so entry keys stay consistent across the
// request log, the handlers, and whatever aggregates them downstream.
func PersonID(id string) Field      { return String("person_id", id) }
func ApplicantID(id string) Field   { return String("applicant_id", id) }
func StudentID(id string) Field     { return String("student_id", id) }
func GroupID(id string) Field       { return String("group_id", id) }
func SummonsID(id string) Field     { return String("summons_id", id) }
func Email(email string) Field      { return String("email", email) }
func Period(p int) Field            { return Int("period", p) }
func GradeValue(v float64) Field    { return Float64("grade_value", v) }
func Component(name string) Field   { return String("component", name) }
func Latency(d time.Duration) Field { return String("latency", d.String()) }

// RequestIDKey is the field key for request tracing.
const RequestIDKey = "request_id"

// ══════════════════════════════════════════════════════════════════════════════
// LOGGER
// ══════════════════════════════════════════════════════════════════════════════

// Options configures the logger.
type Options struct {
	Output    io.Writer
	Level     Level
	Format    Format
	AddCaller bool
}

// Logger writes structured log entries. The zero value is not usable;
// construct with New or Default.
type Logger struct {
	mu        sync.Mutex
	output    io.Writer
	level     Level
	format    Format
	fields    []Field
	addCaller bool
}

// New creates a new Logger with the given options.
func New(opts Options) *Logger {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Logger{
		output:    opts.Output,
		level:     opts.Level,
		format:    opts.Format,
		addCaller: opts.AddCaller,
	}
}

// Default creates an info-level JSON logger on stdout.
func Default() *Logger {
	return New(Options{Level: LevelInfo, Format: FormatJSON, AddCaller: true})
}

// With returns a new Logger carrying the given fields on every entry.
func (l *Logger) With(fields ...Field) *Logger {
	child := &Logger{
		output:    l.output,
		level:     l.level,
		format:    l.format,
		addCaller: l.addCaller,
		fields:    make([]Field, 0, len(l.fields)+len(fields)),
	}
	child.fields = append(child.fields, l.fields...)
	child.fields = append(child.fields, fields...)
	return child
}

// WithRequestID returns a logger with the request ID field added.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.With(String(RequestIDKey, requestID))
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...Field) { l.log(LevelDebug, msg, fields) }

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...Field) { l.log(LevelInfo, msg, fields) }

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...Field) { l.log(LevelWarn, msg, fields) }

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...Field) { l.log(LevelError, msg, fields) }

// ══════════════════════════════════════════════════════════════════════════════
// ENCODING
// ══════════════════════════════════════════════════════════════════════════════

func (l *Logger) log(level Level, msg string, fields []Field) {
	if level < l.level {
		return
	}

	merged := make(map[string]any, len(l.fields)+len(fields))
	for _, f := range l.fields {
		merged[f.Key] = f.Value
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}

	caller := ""
	if l.addCaller {
		if _, file, line, ok := runtime.Caller(2); ok {
			if idx := strings.LastIndex(file, "/"); idx >= 0 {
				file = file[idx+1:]
			}
			caller = fmt.Sprintf("%s:%d", file, line)
		}
	}

	ts := time.Now().UTC().Format(time.RFC3339Nano)

	var line string
	if l.format == FormatText {
		line = encodeText(ts, level, msg, caller, merged)
	} else {
		line = encodeJSON(ts, level, msg, caller, merged)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.output, line)
	io.WriteString(l.output, "\n")
}

func encodeJSON(ts string, level Level, msg, caller string, fields map[string]any) string {
	entry := struct {
		Timestamp string         `json:"timestamp"`
		Level     string         `json:"level"`
		Message   string         `json:"message"`
		Caller    string         `json:"caller,omitempty"`
		Fields    map[string]any `json:"fields,omitempty"`
	}{
		Timestamp: ts,
		Level:     level.String(),
		Message:   msg,
		Caller:    caller,
	}
	if len(fields) > 0 {
		entry.Fields = fields
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf("%s [%s] %s", ts, level, msg)
	}
	return string(data)
}

func encodeText(ts string, level Level, msg, caller string, fields map[string]any) string {
	var b strings.Builder
	b.WriteString(ts)
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] ")
	b.WriteString(msg)
	if caller != "" {
		b.WriteString(" (")
		b.WriteString(caller)
		b.WriteString(")")
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}
