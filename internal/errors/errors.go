// Package errors provides structured error types for the jot application.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindMalformedData
	KindInvalidAction
	KindIO
	KindConfig
	KindClipboard
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindMalformedData:
		return "malformed data"
	case KindInvalidAction:
		return "invalid action"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindClipboard:
		return "clipboard error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for jot.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Codec errors
func MalformedDocument(reason string) error {
	return E(Op("editor.Unmarshal"), KindMalformedData, reason)
}

func MalformedState(reason string) error {
	return E(Op("tabs.Unmarshal"), KindMalformedData, reason)
}

func MalformedAction(reason string) error {
	return E(Op("tabs.ParseAction"), KindMalformedData, reason)
}

// UnknownAction reports an action variant outside the recognized set.
func UnknownAction(op Op, action interface{}) error {
	return E(op, KindInvalidAction, fmt.Sprintf("unrecognized action %T", action))
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// State storage errors
func StateLoadFailed(path string, err error) error {
	return E(Op("config.LoadState"), KindIO, fmt.Sprintf("failed to load state from %s", path), err)
}

func StateSaveFailed(path string, err error) error {
	return E(Op("config.SaveState"), KindIO, fmt.Sprintf("failed to save state to %s", path), err)
}

// Clipboard errors
func ClipboardUnavailable(err error) error {
	if err == nil {
		return E(Op("clipboard.Copy"), KindClipboard, "no clipboard backend available")
	}
	return E(Op("clipboard.Copy"), KindClipboard, "no clipboard backend available", err)
}

// Export errors
func ExportFailed(path string, err error) error {
	return E(Op("export.Write"), KindIO, fmt.Sprintf("failed to export to %s", path), err)
}
