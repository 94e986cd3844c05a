// Package logger writes log entries to the console and a JSON-lines file and
// fans them out to subscribers.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Levels used by the client.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// LogEntry represents a single log record.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

const maxFileSize = int64(5 * 1024 * 1024)

// Logger writes entries to an optional console writer, appends them to a log
// file when one is open, and fans them out to subscribers.
type Logger struct {
	mu      sync.RWMutex
	console io.Writer
	home    string

	filePath   string
	file       *os.File
	logChan    chan LogEntry
	done       chan struct{}
	workerDone chan struct{}

	subsMu      sync.RWMutex
	subscribers map[chan LogEntry]bool
}

// New creates a logger that mirrors entries to console, which may be nil.
func New(console io.Writer) *Logger {
	home, _ := os.UserHomeDir()
	return &Logger{
		console:     console,
		home:        home,
		subscribers: make(map[chan LogEntry]bool),
	}
}

// Open starts appending entries to a dated log file in dir.
func (l *Logger) Open(dir string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return fmt.Errorf("log file already open: %s", l.filePath)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	l.filePath = filepath.Join(dir, fmt.Sprintf("%s-asclient.log", time.Now().Format("20060102")))
	f, err := os.OpenFile(l.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	l.file = f

	l.logChan = make(chan LogEntry, 100)
	l.done = make(chan struct{})
	l.workerDone = make(chan struct{})
	go l.worker(l.logChan, l.done, l.workerDone)
	return nil
}

// redact shortens paths under the user's home directory.
func (l *Logger) redact(message string) string {
	if l.home == "" || l.home == "/" {
		return message
	}
	return strings.ReplaceAll(message, l.home, "~")
}

// Log adds a new entry.
func (l *Logger) Log(level, message string) {
	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level,
		Message:   l.redact(message),
	}

	l.mu.Lock()
	logChan := l.logChan
	if l.console != nil {
		fmt.Fprintf(l.console, "[%s] [%s] %s\n", entry.Timestamp, level, entry.Message)
	}
	l.mu.Unlock()

	if logChan != nil {
		select {
		case logChan <- entry:
		default:
			// Drop if the writer is behind
		}
	}

	l.subsMu.RLock()
	for sub := range l.subscribers {
		select {
		case sub <- entry:
		default:
		}
	}
	l.subsMu.RUnlock()
}

// Debugf logs a formatted DEBUG entry.
func (l *Logger) Debugf(format string, args ...any) { l.Log(LevelDebug, fmt.Sprintf(format, args...)) }

// Infof logs a formatted INFO entry.
func (l *Logger) Infof(format string, args ...any) { l.Log(LevelInfo, fmt.Sprintf(format, args...)) }

// Warnf logs a formatted WARN entry.
func (l *Logger) Warnf(format string, args ...any) { l.Log(LevelWarn, fmt.Sprintf(format, args...)) }

// Errorf logs a formatted ERROR entry.
func (l *Logger) Errorf(format string, args ...any) { l.Log(LevelError, fmt.Sprintf(format, args...)) }

// Subscribe returns a channel that receives new log entries.
func (l *Logger) Subscribe() chan LogEntry {
	l.subsMu.Lock()
	defer l.subsMu.Unlock()
	ch := make(chan LogEntry, 100)
	l.subscribers[ch] = true
	return ch
}

// Unsubscribe removes a log subscriber.
func (l *Logger) Unsubscribe(ch chan LogEntry) {
	l.subsMu.Lock()
	defer l.subsMu.Unlock()
	if l.subscribers[ch] {
		delete(l.subscribers, ch)
		close(ch)
	}
}

// Mirror copies every new entry to w until the returned stop function is
// called. stop waits for pending entries to be written.
func (l *Logger) Mirror(w io.Writer) (stop func()) {
	ch := l.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for entry := range ch {
			fmt.Fprintf(w, "[%s] %s\n", entry.Level, entry.Message)
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.Unsubscribe(ch)
			<-done
		})
	}
}

// FilePath returns the path of the open log file, or "".
func (l *Logger) FilePath() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.filePath
}

// Close flushes pending entries and closes the log file.
func (l *Logger) Close() {
	l.mu.Lock()
	done, workerDone := l.done, l.workerDone
	l.done, l.workerDone, l.logChan = nil, nil, nil
	l.mu.Unlock()

	if done != nil {
		close(done)
		<-workerDone
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}

func (l *Logger) worker(entries <-chan LogEntry, done <-chan struct{}, workerDone chan<- struct{}) {
	defer close(workerDone)
	for {
		select {
		case entry := <-entries:
			l.write(entry)
		case <-done:
			for {
				select {
				case entry := <-entries:
					l.write(entry)
				default:
					return
				}
			}
		}
	}
}

func (l *Logger) write(entry LogEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f := l.file
	if f == nil {
		return
	}

	// Start over once the file passes the size limit
	if info, err := f.Stat(); err == nil && info.Size() > maxFileSize {
		f.Close()
		f, err = os.OpenFile(l.filePath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			l.file = nil
			return
		}
		l.file = f
		data, _ := json.Marshal(LogEntry{
			Timestamp: time.Now().Format(time.RFC3339),
			Level:     LevelInfo,
			Message:   "Log file reached 5MB limit and was truncated.",
		})
		f.Write(append(data, '\n'))
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	f.Write(append(data, '\n'))
}
