package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Format represents the log output format
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// FileLoggerConfig holds configuration for file logging
type FileLoggerConfig struct {
	// Path is the log file path (empty = write to Writer)
	Path string
	// Writer receives log lines when Path is empty (nil = stderr)
	Writer io.Writer
	// Format is the output format (json or text)
	Format Format
	// Level is the minimum log level
	Level Level
	// MaxSize is the file size in bytes that triggers rotation (0 = never)
	MaxSize int64
	// MaxBackups is the number of rotated files kept next to Path
	MaxBackups int
}

// FileLogger writes structured entries to a file or a stream.
// Loggers returned by WithFields share the parent's output.
type FileLogger struct {
	config FileLoggerConfig
	out    *sink
	fields Fields
}

// NewFileLogger creates a new logger.
// With a Path it appends to that file, creating parent directories;
// otherwise it writes to config.Writer.
func NewFileLogger(config FileLoggerConfig) (*FileLogger, error) {
	if config.Path == "" {
		w := config.Writer
		if w == nil {
			w = os.Stderr
		}
		return &FileLogger{config: config, out: &sink{writer: w}}, nil
	}

	out := &sink{path: config.Path, maxSize: config.MaxSize, maxBackups: config.MaxBackups}
	if err := os.MkdirAll(filepath.Dir(config.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := out.open(); err != nil {
		return nil, err
	}
	return &FileLogger{config: config, out: out}, nil
}

func (l *FileLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.log(DebugLevel, msg, nil, fields)
}

func (l *FileLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.log(InfoLevel, msg, nil, fields)
}

func (l *FileLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.log(WarnLevel, msg, nil, fields)
}

func (l *FileLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	l.log(ErrorLevel, msg, err, fields)
}

// WithFields returns a logger with additional fields sharing the same output
func (l *FileLogger) WithFields(fields Fields) Logger {
	return &FileLogger{
		config: l.config,
		out:    l.out,
		fields: mergeFields(l.fields, fields),
	}
}

// Close closes the log file. Stream outputs are left open.
func (l *FileLogger) Close() error {
	return l.out.close()
}

func (l *FileLogger) log(level Level, msg string, err error, fields Fields) {
	if level < l.config.Level {
		return
	}

	e := entry{
		time:   time.Now().UTC(),
		level:  level,
		msg:    msg,
		err:    err,
		fields: mergeFields(l.fields, fields),
	}

	var line []byte
	if l.config.Format == FormatJSON {
		var marshalErr error
		if line, marshalErr = e.json(); marshalErr != nil {
			return
		}
	} else {
		line = e.text()
	}

	l.out.write(line)
}

// entry is one log record before formatting
type entry struct {
	time   time.Time
	level  Level
	msg    string
	err    error
	fields Fields
}

func (e entry) json() ([]byte, error) {
	doc := make(map[string]interface{}, len(e.fields)+4)
	for k, v := range e.fields {
		doc[k] = v
	}
	doc["timestamp"] = e.time.Format(time.RFC3339)
	doc["level"] = levelString(e.level)
	doc["message"] = e.msg
	if e.err != nil {
		doc["error"] = e.err.Error()
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// text renders "<time> [LEVEL] msg error=".." k=v ..." with keys sorted
func (e entry) text() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", e.time.Format("2006-01-02T15:04:05.000Z"), levelString(e.level), e.msg)
	if e.err != nil {
		fmt.Fprintf(&b, " error=%q", e.err.Error())
	}

	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.fields[k])
	}

	b.WriteByte('\n')
	return []byte(b.String())
}

func mergeFields(base, extra Fields) Fields {
	merged := make(Fields, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// sink serializes writes and, for files, handles size-based rotation
type sink struct {
	mu         sync.Mutex
	writer     io.Writer
	file       *os.File
	path       string
	size       int64
	maxSize    int64
	maxBackups int
}

func (s *sink) open() error {
	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	s.file = file
	s.writer = file
	s.size = info.Size()
	return nil
}

func (s *sink) write(line []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file != nil && s.maxSize > 0 && s.size >= s.maxSize {
		s.rotate()
	}

	n, _ := s.writer.Write(line)
	s.size += int64(n)
}

// rotate shifts path.N to path.N+1, moves path to path.1 and reopens path.
// Caller holds mu.
func (s *sink) rotate() {
	s.file.Close()

	for i := s.maxBackups - 1; i >= 1; i-- {
		os.Rename(fmt.Sprintf("%s.%d", s.path, i), fmt.Sprintf("%s.%d", s.path, i+1))
	}
	if s.maxBackups > 0 {
		os.Rename(s.path, s.path+".1")
		os.Remove(fmt.Sprintf("%s.%d", s.path, s.maxBackups+1))
	} else {
		os.Remove(s.path)
	}

	if err := s.open(); err != nil {
		s.file = nil
		s.writer = io.Discard
	}
}

func (s *sink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.writer = io.Discard
	return err
}

// levelString returns the string representation of a log level
func levelString(level Level) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
