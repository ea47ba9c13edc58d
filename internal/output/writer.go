// Package output writes the generated .gitignore artifact.
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"gitignore-tui/internal/domain"
	"gitignore-tui/internal/search"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	rule            = "# ================================================================"
	attribution     = "gitignore-tui"
)

// Writer saves content to a single target path
type Writer struct {
	path string
	now  func() time.Time
}

// NewWriter creates a writer for path
func NewWriter(path string) *Writer {
	return &Writer{path: path, now: time.Now}
}

// WithClock replaces the time source; used by tests
func (w *Writer) WithClock(now func() time.Time) *Writer {
	w.now = now
	return w
}

// Path returns the target path
func (w *Writer) Path() string {
	return w.path
}

// Name returns the base name of the target, for status messages
func (w *Writer) Name() string {
	return filepath.Base(w.path)
}

// Exists reports whether the target is present
func (w *Writer) Exists() (bool, error) {
	_, err := os.Stat(w.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, &domain.PersistenceError{Op: "stat", Path: w.path, Err: err}
}

// Header builds the comment block written above new or overwritten content
func Header(selected []string, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# .gitignore file generated by %s\n", attribution)
	fmt.Fprintf(&b, "# Generated on: %s\n", now.Format(timestampLayout))
	fmt.Fprintf(&b, "# Templates used: %s\n", strings.Join(search.Alphabetical(selected), ", "))
	b.WriteString("#\n")
	b.WriteString("# This file was created using the GitIgnore TUI tool\n")
	b.WriteString("#\n")
	b.WriteString(rule + "\n\n")
	return b.String()
}

// Separator builds the block inserted between existing bytes and appended
// content
func Separator(selected []string, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n\n# Added by %s on %s\n", attribution, now.Format(timestampLayout))
	fmt.Fprintf(&b, "# Templates: %s\n", strings.Join(search.Alphabetical(selected), ", "))
	b.WriteString(rule + "\n\n")
	return b.String()
}

// Save writes content according to mode. New fails if the target already
// exists; Overwrite replaces it atomically; Append keeps the existing bytes.
func (w *Writer) Save(mode domain.SaveMode, selected []string, content string) (domain.SaveResult, error) {
	now := w.now()
	result := domain.SaveResult{Path: w.path, Mode: mode}

	switch mode {
	case domain.SaveNew:
		data := Header(selected, now) + content
		if err := w.writeExclusive(data); err != nil {
			return result, err
		}
		result.Bytes = utf8.RuneCountInString(data)

	case domain.SaveOverwrite:
		data := Header(selected, now) + content
		if err := w.replace(data); err != nil {
			return result, err
		}
		result.Bytes = utf8.RuneCountInString(data)

	case domain.SaveAppend:
		if err := w.append(Separator(selected, now) + content); err != nil {
			return result, err
		}
		result.Bytes = utf8.RuneCountInString(content)

	default:
		return result, fmt.Errorf("unknown save mode %d", mode)
	}
	return result, nil
}

func (w *Writer) writeExclusive(data string) error {
	f, err := os.OpenFile(w.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return &domain.PersistenceError{Op: "create", Path: w.path, Err: err}
	}
	if _, err := f.WriteString(data); err != nil {
		f.Close()
		return &domain.PersistenceError{Op: "write", Path: w.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.PersistenceError{Op: "write", Path: w.path, Err: err}
	}
	return nil
}

// replace writes to a sibling temp file and renames it over the target so a
// failed write leaves the original untouched
func (w *Writer) replace(data string) error {
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(w.path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(w.path)
	tmp, err := os.CreateTemp(dir, ".gitignore-tui-*")
	if err != nil {
		return &domain.PersistenceError{Op: "overwrite", Path: w.path, Err: err}
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if _, err := tmp.WriteString(data); err != nil {
		cleanup()
		return &domain.PersistenceError{Op: "overwrite", Path: w.path, Err: err}
	}
	if err := tmp.Chmod(perm); err != nil {
		cleanup()
		return &domain.PersistenceError{Op: "overwrite", Path: w.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &domain.PersistenceError{Op: "overwrite", Path: w.path, Err: err}
	}
	if err := os.Rename(tmpName, w.path); err != nil {
		os.Remove(tmpName)
		return &domain.PersistenceError{Op: "overwrite", Path: w.path, Err: err}
	}
	return nil
}

func (w *Writer) append(data string) error {
	f, err := os.OpenFile(w.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return &domain.PersistenceError{Op: "append", Path: w.path, Err: err}
	}
	if _, err := f.WriteString(data); err != nil {
		f.Close()
		return &domain.PersistenceError{Op: "append", Path: w.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.PersistenceError{Op: "append", Path: w.path, Err: err}
	}
	return nil
}
