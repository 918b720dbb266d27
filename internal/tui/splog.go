package tui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// consoleWriter writes to the terminal, or into a buffer while output is held
type consoleWriter struct {
	mu   sync.Mutex
	out  io.Writer
	held bool
	buf  bytes.Buffer
}

func (w *consoleWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.held {
		return w.buf.Write(p)
	}
	return w.out.Write(p)
}

func (w *consoleWriter) hold() {
	w.mu.Lock()
	w.held = true
	w.mu.Unlock()
}

func (w *consoleWriter) release() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.held = false
	if w.buf.Len() == 0 {
		return nil
	}
	_, err := w.out.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

// simpleHandler is a custom slog handler that writes messages without timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	// Debug messages only enabled in debug mode
	if level == slog.LevelDebug {
		return h.debugMode
	}
	// Info, Warn, and Error are always enabled
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// createLumberjackLogger creates a lumberjack logger with rotation tunables
// read from GISSY_LOG_MAX_SIZE, GISSY_LOG_MAX_BACKUPS and GISSY_LOG_MAX_AGE
func createLumberjackLogger(logFilePath string) *lumberjack.Logger {
	config := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,     // 1MB (in megabytes) - default
		MaxBackups: 2,     // Keep 2 old files - default
		MaxAge:     30,    // Keep for 30 days - default
		Compress:   false, // Never compress logs - default
	}

	// Override with environment variables
	if maxSizeStr := os.Getenv("GISSY_LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			config.MaxSize = maxSize
		}
	}

	if maxBackupsStr := os.Getenv("GISSY_LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			config.MaxBackups = maxBackups
		}
	}

	if maxAgeStr := os.Getenv("GISSY_LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			config.MaxAge = maxAge
		}
	}

	return config
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	// Enable if any handler is enabled
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	// Send to all handlers
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// Splog provides structured logging and output
type Splog struct {
	logger     *slog.Logger
	fileLogger *slog.Logger // Separate logger for file output
	console    *consoleWriter
	logWriter  io.WriteCloser // Lumberjack logger for file logging
	closed     bool
}

// SplogOptions configures NewSplogWithOptions.
type SplogOptions struct {
	// Writer receives console output; defaults to os.Stdout
	Writer io.Writer
	// LogFile enables rotating file logging when non-empty
	LogFile string
	// Debug enables debug console output; DEBUG in the environment also does
	Debug bool
}

// NewSplog creates a new splog instance with console-only logging
// Debug messages are enabled when the DEBUG environment variable is set
func NewSplog() *Splog {
	splog, _ := NewSplogWithOptions(SplogOptions{})
	return splog
}

// NewSplogWithOptions creates a new splog instance with optional file logging
func NewSplogWithOptions(opts SplogOptions) (*Splog, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}
	debugMode := opts.Debug || os.Getenv("DEBUG") != ""
	splog := &Splog{
		console: &consoleWriter{out: writer},
	}

	consoleHandler := &simpleHandler{
		writer:    splog.console,
		debugMode: debugMode,
	}

	var handlers []slog.Handler
	handlers = append(handlers, consoleHandler)

	if opts.LogFile != "" {
		logDir := filepath.Dir(opts.LogFile)
		if err := os.MkdirAll(logDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		lumberjackLogger := createLumberjackLogger(opts.LogFile)
		splog.logWriter = lumberjackLogger

		fileHandler := slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
			Level: slog.LevelDebug, // Always log everything to file
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		})

		handlers = append(handlers, fileHandler)
		splog.fileLogger = slog.New(fileHandler)
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})

	return splog, nil
}

// Writer returns the console writer.
func (s *Splog) Writer() io.Writer {
	return s.console
}

// Hold buffers console output until Release. The log file is still written
// immediately.
func (s *Splog) Hold() {
	s.console.hold()
}

// Release writes out everything buffered since Hold and resumes direct output.
func (s *Splog) Release() error {
	return s.console.release()
}

// logMessage is a helper to log a message using slog without format string validation
func (s *Splog) logMessage(level slog.Level, msg string) {
	s.logger.Log(context.Background(), level, msg)
}

// Info writes an info message
// The format parameter may be a variable string, which is safe as we use fmt.Sprintf internally
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(format string, args ...interface{}) {
	var msg string
	if len(args) == 0 {
		msg = format
	} else {
		msg = fmt.Sprintf(format, args...)
	}
	s.logMessage(slog.LevelInfo, msg)
}

// Page writes raw output without a trailing newline
func (s *Splog) Page(content string) {
	_, _ = fmt.Fprint(s.console, content)
}

// Newline writes a newline
func (s *Splog) Newline() {
	_, _ = fmt.Fprintln(s.console)
}

// Warn writes a warning message
// The format parameter may be a variable string, which is safe as we use fmt.Sprintf internally
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(format string, args ...interface{}) {
	var msg string
	if len(args) == 0 {
		msg = "⚠️  " + format
	} else {
		msg = fmt.Sprintf("⚠️  "+format, args...)
	}
	s.logMessage(slog.LevelWarn, msg)
}

// Error writes an error message
// The format parameter may be a variable string, which is safe as we use fmt.Sprintf internally
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(format string, args ...interface{}) {
	var msg string
	if len(args) == 0 {
		msg = "❌ " + format
	} else {
		msg = fmt.Sprintf("❌ "+format, args...)
	}
	s.logMessage(slog.LevelError, msg)
}

// Debug writes a debug message
// The format parameter may be a variable string, which is safe as we use fmt.Sprintf internally
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...interface{}) {
	var msg string
	if len(args) == 0 {
		msg = format
	} else {
		msg = fmt.Sprintf(format, args...)
	}
	s.logMessage(slog.LevelDebug, msg)
}

// Success writes a success message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Success(format string, args ...interface{}) {
	var msg string
	if len(args) == 0 {
		msg = "✅ " + format
	} else {
		msg = fmt.Sprintf("✅ "+format, args...)
	}
	s.logMessage(slog.LevelInfo, msg)
}

// Tip writes a tip message
// The format parameter may be a variable string, which is safe as we use fmt.Sprintf internally
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Tip(format string, args ...interface{}) {
	var msg string
	if len(args) == 0 {
		msg = "💡 " + format
	} else {
		msg = fmt.Sprintf("💡 "+format, args...)
	}
	s.logMessage(slog.LevelInfo, msg)
}

// Close flushes held console output and closes the log file if one was
// opened. Calling it again is a no-op.
func (s *Splog) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.console.release()
	if s.logWriter != nil {
		if closeErr := s.logWriter.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}

// Closed reports whether Close has run.
func (s *Splog) Closed() bool {
	return s.closed
}
