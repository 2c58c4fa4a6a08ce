// Package errors provides sentinel errors and error types for chesskit.
// It defines the recoverable failure conditions of the engine and structured
// error types that preserve context while allowing inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the engine's failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMoveText indicates malformed coordinate move text.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrIllegalMove indicates a well-formed move that is not in the
	// legal-move set for the current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates an out-of-range square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrGameOver indicates a move submitted to a finished game.
	ErrGameOver = errors.New("game is over")
)

// PositionError wraps errors with position context: the FEN text involved
// and, for parse failures, the FEN field that was malformed. It implements
// the error interface and supports unwrapping via errors.Is() and errors.As().
type PositionError struct {
	Err   error  // The underlying error
	FEN   string // The FEN text involved (if applicable)
	Field string // The offending FEN field name (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("%s field", e.Field))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.FEN))
	}
	context := strings.Join(parts, " ")
	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with move context: the submitted move text, the
// position it was submitted to, and the ply number when known.
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move text that caused the error (if applicable)
	FEN      string // FEN of the position the move was submitted to
	Ply      int    // 1-based ply number (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}
	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
