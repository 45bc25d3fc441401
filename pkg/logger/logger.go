package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger логгер сервиса: пишет одновременно в файл и stdout
type Logger struct {
	std   *log.Logger
	level Level
	file  *os.File
}

// New создает логгер, пишущий в указанный файл и stdout
// level: "debug", "info", "warn", "error"
func New(filePath string, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

	var file *os.File
	if filePath != "" {
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %s: %w", filePath, err)
		}
		writers = append(writers, file)
	}

	return &Logger{
		std:   log.New(io.MultiWriter(writers...), "", log.LstdFlags),
		level: lvl,
		file:  file,
	}, nil
}

func parseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("logger: unknown log level %q", level)
	}
}

// Close закрывает файл логов
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) output(lvl Level, prefix, format string, v ...interface{}) {
	if lvl < l.level {
		return
	}
	l.std.Printf(prefix+" "+format, v...)
}

// Debug пишет отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.output(LevelDebug, "[DEBUG]", format, v...)
}

// Info пишет информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.output(LevelInfo, "[INFO]", format, v...)
}

// Warn пишет предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.output(LevelWarn, "[WARN]", format, v...)
}

// Error пишет сообщение об ошибке
func (l *Logger) Error(format string, v ...interface{}) {
	l.output(LevelError, "[ERROR]", format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.output(LevelError, "[FATAL]", format, v...)
	if l.file != nil {
		_ = l.file.Close()
	}
	os.Exit(1)
}
