package errors

import (
	"errors"
	"testing"

	"github.com/lgbarn/chesskit/internal/testutil"
)

func TestPositionError(t *testing.T) {
	err := &PositionError{
		Err:   ErrInvalidFEN,
		FEN:   "bad fen",
		Field: "castling",
	}

	testutil.AssertTrue(t, errors.Is(err, ErrInvalidFEN))
	testutil.AssertContains(t, err.Error(), "castling field")
	testutil.AssertContains(t, err.Error(), `"bad fen"`)
	testutil.AssertContains(t, err.Error(), ErrInvalidFEN.Error())

	var posErr *PositionError
	testutil.AssertTrue(t, errors.As(err, &posErr))
	testutil.AssertEqual(t, posErr.Field, "castling")
}

func TestPositionError_MinimalContext(t *testing.T) {
	err := &PositionError{Err: ErrInvalidFEN}
	testutil.AssertEqual(t, err.Error(), ErrInvalidFEN.Error())
}

func TestMoveError(t *testing.T) {
	err := &MoveError{
		Err:      ErrIllegalMove,
		MoveText: "e2e5",
		FEN:      "some fen",
		Ply:      3,
	}

	testutil.AssertTrue(t, errors.Is(err, ErrIllegalMove))
	testutil.AssertContains(t, err.Error(), "ply 3")
	testutil.AssertContains(t, err.Error(), `move "e2e5"`)
	testutil.AssertContains(t, err.Error(), `position "some fen"`)

	var moveErr *MoveError
	testutil.AssertTrue(t, errors.As(err, &moveErr))
	testutil.AssertEqual(t, moveErr.MoveText, "e2e5")
}

func TestMoveError_OmitsEmptyParts(t *testing.T) {
	err := &MoveError{Err: ErrInvalidMoveText, MoveText: "xx"}

	msg := err.Error()
	testutil.AssertContains(t, msg, `move "xx"`)
	if errors.Is(err, ErrIllegalMove) {
		t.Fatal("must not match an unrelated sentinel")
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidSquare, "parsing")
	testutil.AssertTrue(t, errors.Is(wrapped, ErrInvalidSquare))
	testutil.AssertContains(t, wrapped.Error(), "parsing")

	testutil.AssertEqual(t, Wrap(nil, "context"), nil)
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrGameOver, "after %d plies", 7)
	testutil.AssertTrue(t, errors.Is(wrapped, ErrGameOver))
	testutil.AssertContains(t, wrapped.Error(), "after 7 plies")

	testutil.AssertEqual(t, Wrapf(nil, "context %d", 1), nil)
}
