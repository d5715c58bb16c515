// Package chesserror defines the unified error taxonomy shared by every
// codec package in this module. It lives in its own package (rather than
// the module root) so that leaf packages such as position and moves can
// construct these errors without importing back up into the root package
// that assembles them into a public API.
package chesserror

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the failure modes a caller may need to distinguish.
type Kind int

const (
	// IO marks a bit or byte reader/writer failure.
	IO Kind = iota
	// Chess marks a rejection from the chess rules oracle while replaying
	// a move sequence.
	Chess
	// MoveNotFound marks an encoder call for a move absent from the sorted
	// legal moves of its stated position.
	MoveNotFound
	// MissingBytes marks a truncated position byte stream.
	MissingBytes
	// SquareOffset marks an internal sanity check on an impossible pawn
	// push offset.
	SquareOffset
	// Leb128 marks an invalid varint.
	Leb128
	// MissingPiece marks an encoder request for a code-12 nibble on a
	// square with no pawn on it.
	MissingPiece
)

func (k Kind) String() string {
	switch k {
	case IO:
		return "IO"
	case Chess:
		return "Chess"
	case MoveNotFound:
		return "MoveNotFound"
	case MissingBytes:
		return "MissingBytes"
	case SquareOffset:
		return "SquareOffsetError"
	case Leb128:
		return "Leb128"
	case MissingPiece:
		return "MissingPiece"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned by every codec in this module.
// It always carries a Kind and, where the kind calls for it, the square
// and/or offset that triggered the failure. The underlying cause (an
// oracle error, a bit-reader underflow, an invalid varint) is wrapped via
// github.com/pkg/errors so callers can still Unwrap/Is through to it, or
// print a stack trace with "%+v" for offline diagnosis.
type Error struct {
	Kind   Kind
	Square int // -1 when not applicable
	Offset int // only meaningful for SquareOffset
	// Position holds whatever position value was in scope when a
	// MissingPiece error was raised. It is stored as any to avoid this
	// package depending on the position package (which depends on this
	// one to construct its own errors).
	Position any

	cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case SquareOffset:
		return fmt.Sprintf("chesscompress: %s: square=%d offset=%d: %v", e.Kind, e.Square, e.Offset, e.cause)
	case MissingPiece:
		return fmt.Sprintf("chesscompress: %s: square=%d position=%v: %v", e.Kind, e.Square, e.Position, e.cause)
	default:
		if e.cause != nil {
			return fmt.Sprintf("chesscompress: %s: %v", e.Kind, e.cause)
		}
		return fmt.Sprintf("chesscompress: %s", e.Kind)
	}
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Cause implements the github.com/pkg/errors Causer interface.
func (e *Error) Cause() error { return e.cause }

// New wraps cause (which may be nil) under kind.
func New(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Square: -1, cause: wrap(cause)}
}

// Wrapf wraps cause under kind with an additional formatted message.
func Wrapf(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Square: -1, cause: errors.Wrapf(wrap(cause), format, args...)}
}

// NewSquareOffset builds the SquareOffset error for an impossible
// en-passant push offset.
func NewSquareOffset(square, offset int) *Error {
	return &Error{
		Kind:   SquareOffset,
		Square: square,
		Offset: offset,
		cause:  errors.Errorf("square %d has no valid occupant at offset %d", square, offset),
	}
}

// NewMissingPiece builds the MissingPiece error for a code-12 square with
// no pawn actually on it.
func NewMissingPiece(position any, square int) *Error {
	return &Error{
		Kind:     MissingPiece,
		Square:   square,
		Position: position,
		cause:    errors.Errorf("square %d has no pawn to encode as the en-passant push target", square),
	}
}

// NewMoveNotFound builds the MoveNotFound error.
func NewMoveNotFound() *Error {
	return &Error{Kind: MoveNotFound, Square: -1, cause: errors.New("move is not among the sorted legal moves of its stated position")}
}

func wrap(cause error) error {
	if cause == nil {
		return nil
	}
	return errors.WithStack(cause)
}
