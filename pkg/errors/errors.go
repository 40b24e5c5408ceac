package errors

import (
	"errors"
	"fmt"
)

// Error codes for the ingestion pipeline
const (
	CodeUpstreamFetch = "upstream_fetch"
	CodeMalformedItem = "malformed_item"
	CodeStorageWrite  = "storage_write"
	CodeDuplicateRace = "duplicate_race"
)

// Pipeline error kinds
var (
	ErrUpstreamFetch = errors.New("upstream fetch failed")
	ErrMalformedItem = errors.New("malformed feed item")
	ErrStorageWrite  = errors.New("storage write failed")
	ErrDuplicateRace = errors.New("post already claimed by a concurrent ingestion")
)

var kinds = map[string]error{
	CodeUpstreamFetch: ErrUpstreamFetch,
	CodeMalformedItem: ErrMalformedItem,
	CodeStorageWrite:  ErrStorageWrite,
	CodeDuplicateRace: ErrDuplicateRace,
}

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinel that belongs to the error code, so
// errors.Is(WrapWithCode(err, CodeStorageWrite, ...), ErrStorageWrite) holds.
func (e *Error) Is(target error) bool {
	kind, ok := kinds[e.Code]
	return ok && kind == target
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// UpstreamFetch tags err as an UpstreamFetchError
func UpstreamFetch(err error, message string) error {
	return WrapWithCode(err, CodeUpstreamFetch, message)
}

// MalformedItem tags err as a MalformedItem error
func MalformedItem(err error, message string) error {
	return WrapWithCode(err, CodeMalformedItem, message)
}

// StorageWrite tags err as a StorageWriteError
func StorageWrite(err error, message string) error {
	return WrapWithCode(err, CodeStorageWrite, message)
}

// DuplicateRace tags err as a lost claim on an upstream id
func DuplicateRace(err error, message string) error {
	return WrapWithCode(err, CodeDuplicateRace, message)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetCode returns the error code if it exists
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func IsUpstreamFetch(err error) bool {
	return errors.Is(err, ErrUpstreamFetch)
}

func IsMalformedItem(err error) bool {
	return errors.Is(err, ErrMalformedItem)
}

func IsStorageWrite(err error) bool {
	return errors.Is(err, ErrStorageWrite)
}

func IsDuplicateRace(err error) bool {
	return errors.Is(err, ErrDuplicateRace)
}
