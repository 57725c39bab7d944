package board

import "errors"

var (
	// ErrStructuralEncoding reports a location list that cannot be encoded:
	// more than MaxListLen squares for one piece type, a repeated square, or a
	// square outside 0..63.
	ErrStructuralEncoding = errors.New("structural encoding error")

	// ErrInvalidCaptureTarget reports a capture on a square that holds no
	// enemy piece other than the king.
	ErrInvalidCaptureTarget = errors.New("invalid capture target")

	// ErrUnimplemented is returned by extensions that are deliberately left
	// unfinished (knight promotion, non-pawn generation, game-state bookkeeping).
	ErrUnimplemented = errors.New("unimplemented operation")

	// ErrSquareOccupied reports an attempt to place a piece on an occupied square.
	ErrSquareOccupied = errors.New("square occupied")

	// ErrInvalidFEN reports a malformed FEN placement field.
	ErrInvalidFEN = errors.New("invalid FEN")
)
