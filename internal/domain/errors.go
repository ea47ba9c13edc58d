package domain

import (
	"errors"
	"fmt"
)

// NetworkError is returned when the catalog service is unreachable or times out
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError is returned when a catalog response cannot be understood
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed response during %s: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// PersistenceError wraps usage and output file I/O failures
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// RenderError describes a recovered drawing failure
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// IsNetwork reports whether err has a NetworkError in its chain
func IsNetwork(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

// IsParse reports whether err has a ParseError in its chain
func IsParse(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// IsPersistence reports whether err has a PersistenceError in its chain
func IsPersistence(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}
