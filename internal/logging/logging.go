package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	mu           sync.Mutex
	traceEnabled bool
	out          io.Writer = io.Discard
	file         *os.File
)

// Configure points the standard logger at path. An empty path discards all
// output so nothing ever reaches the terminal the UI is drawing on.
func Configure(path string) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	if strings.TrimSpace(path) == "" {
		out = io.Discard
		log.SetOutput(out)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		out = io.Discard
		log.SetOutput(out)
		return fmt.Errorf("unable to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		out = io.Discard
		log.SetOutput(out)
		return fmt.Errorf("could not open log file: %w", err)
	}
	file = f
	out = f
	log.SetOutput(f)
	return nil
}

// Close releases the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	out = io.Discard
	log.SetOutput(out)
}

func closeLocked() {
	if file != nil {
		_ = file.Close()
		file = nil
	}
}

// Error writes a non-nil error to the log
func Error(err error) {
	if err == nil {
		return
	}
	log.Println(err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !traceEnabled {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	if err := json.NewEncoder(out).Encode(entry); err != nil {
		log.Printf("trace encoding failed: %v", err)
	}
}
