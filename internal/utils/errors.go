// Package utils provides small ambient helpers shared by the archiver's
// internal packages: error wrapping, overflow-checked arithmetic, buffer
// size validation and a scratch buffer pool.
package utils

import "fmt"

// ZipError represents a contextual error produced by one of the archiver's
// internal packages.
type ZipError struct {
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *ZipError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Cause)
}

// Unwrap provides compatibility with errors.Is/errors.As.
func (e *ZipError) Unwrap() error {
	return e.Cause
}

// Wrap attaches context to cause. It returns nil when cause is nil so
// callers can write `return utils.Wrap("...", err)` unconditionally.
func Wrap(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &ZipError{Context: context, Cause: cause}
}
