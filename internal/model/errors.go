package model

import (
	"errors"
	"fmt"
)

// DocumentKind identifies which sub-record a diagnostic refers to.
type DocumentKind string

const (
	KindInvoice    DocumentKind = "invoice"
	KindCreditNote DocumentKind = "credit-note"
)

// SkipError reports a precondition fault: a mandatory cross-field
// requirement is unmet, so the document is skipped. It never aborts the
// batch.
type SkipError struct {
	Kind    DocumentKind
	Missing string
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("%s skipped: missing %s", e.Kind, e.Missing)
}

// NewSkipError creates a new skip error
func NewSkipError(kind DocumentKind, missing string) *SkipError {
	return &SkipError{Kind: kind, Missing: missing}
}

// IsSkip reports whether err is a precondition fault.
func IsSkip(err error) bool {
	var skip *SkipError
	return errors.As(err, &skip)
}

// LoadError reports a failure to read or decode an input record.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load %s: %s (%v)", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NewLoadError creates a new load error
func NewLoadError(path, message string, cause error) *LoadError {
	return &LoadError{Path: path, Message: message, Cause: cause}
}
