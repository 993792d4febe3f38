package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogLevel определяет уровни логирования
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
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

// ParseLevel разбирает имя уровня; неизвестное имя даёт INFO.
func ParseLevel(name string) LogLevel {
	switch name {
	case "trace", "TRACE":
		return TRACE
	case "debug", "DEBUG":
		return DEBUG
	case "warn", "WARN":
		return WARN
	case "error", "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Options задаёт вывод логгера.
type Options struct {
	Dir          string   // Каталог для файла логов; пусто - без файла
	ConsoleLevel LogLevel // Минимальный уровень для консоли
}

// Logger представляет систему логирования
type Logger struct {
	mu            sync.Mutex
	consoleLogger *log.Logger
	fileLogger    *log.Logger
	file          *os.File
	consoleLevel  LogLevel
}

// Глобальный экземпляр логгера. До InitLogger пишет INFO и выше в stderr.
var globalLogger = &Logger{
	consoleLogger: log.New(os.Stderr, "", log.LstdFlags),
	consoleLevel:  INFO,
}

// InitLogger инициализирует систему логирования
func InitLogger(opts Options) error {
	l := &Logger{
		consoleLogger: log.New(os.Stdout, "", log.LstdFlags),
		consoleLevel:  opts.ConsoleLevel,
	}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return fmt.Errorf("ошибка создания директории логов: %w", err)
		}
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		filename := filepath.Join(opts.Dir, fmt.Sprintf("game_%s.log", timestamp))

		file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("ошибка создания файла логов: %w", err)
		}
		l.file = file
		l.fileLogger = log.New(file, "", log.LstdFlags)
	}

	CloseLogger()
	globalLogger = l
	return nil
}

// SetOutput перенаправляет консольный вывод (используется в тестах).
func SetOutput(w io.Writer, level LogLevel) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.consoleLogger = log.New(w, "", 0)
	globalLogger.consoleLevel = level
}

// CloseLogger закрывает систему логирования
func CloseLogger() {
	if globalLogger == nil {
		return
	}
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	if globalLogger.file != nil {
		globalLogger.file.Close()
		globalLogger.file = nil
		globalLogger.fileLogger = nil
	}
}

// LogTrace логирует сообщение уровня TRACE
func LogTrace(format string, args ...interface{}) {
	logMessage(TRACE, format, args...)
}

// LogDebug логирует сообщение уровня DEBUG
func LogDebug(format string, args ...interface{}) {
	logMessage(DEBUG, format, args...)
}

// LogInfo логирует сообщение уровня INFO
func LogInfo(format string, args ...interface{}) {
	logMessage(INFO, format, args...)
}

// LogWarn логирует сообщение уровня WARN
func LogWarn(format string, args ...interface{}) {
	logMessage(WARN, format, args...)
}

// LogError логирует сообщение уровня ERROR
func LogError(format string, args ...interface{}) {
	logMessage(ERROR, format, args...)
}

func logMessage(level LogLevel, format string, args ...interface{}) {
	l := globalLogger
	if l == nil {
		return
	}
	message := fmt.Sprintf("[%s] %s", level.String(), fmt.Sprintf(format, args...))

	l.mu.Lock()
	defer l.mu.Unlock()
	// В файл пишутся все уровни
	if l.fileLogger != nil {
		l.fileLogger.Println(message)
	}
	if level >= l.consoleLevel {
		l.consoleLogger.Println(message)
	}
}
