package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a position from the piece placement field of a FEN string.
// Side to move, castling, en passant and clock fields are accepted but
// ignored since the position does not track them. Check flags are computed.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidFEN)
	}

	type placed struct {
		piece Piece
		sq    Square
	}
	var pieces []placed
	kings := [2]Square{NoSquare, NoSquare}

	err := parsePiecePlacement(parts[0], func(piece Piece, sq Square) error {
		if piece.Type() != King {
			pieces = append(pieces, placed{piece, sq})
			return nil
		}
		c := piece.Color()
		if kings[c] != NoSquare {
			return fmt.Errorf("%w: more than one %v king", ErrInvalidFEN, c)
		}
		kings[c] = sq
		return nil
	})
	if err != nil {
		return nil, err
	}
	for c := White; c <= Black; c++ {
		if kings[c] == NoSquare {
			return nil, fmt.Errorf("%w: missing %v king", ErrInvalidFEN, c)
		}
	}

	pos, err := NewEmptyPosition(kings[White], kings[Black])
	if err != nil {
		return nil, err
	}
	for _, pl := range pieces {
		if err := pos.Put(pl.piece.Color(), pl.piece.Type(), pl.sq); err != nil {
			return nil, fmt.Errorf("parse FEN %q: %w", parts[0], err)
		}
	}

	pos.UpdateCheckFlags()
	return pos, nil
}

// parsePiecePlacement walks the piece placement section of a FEN string and
// calls place for every piece, from a8 towards h1.
func parsePiecePlacement(placement string, place func(Piece, Square) error) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
			}

			if c >= '1' && c <= '8' {
				// Skip empty squares
				file += int(c - '0')
				continue
			}

			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return fmt.Errorf("%w: invalid piece character %q", ErrInvalidFEN, c)
			}
			if err := place(piece, NewSquare(file, rank)); err != nil {
				return err
			}
			file++
		}

		if file != 8 {
			return fmt.Errorf("%w: invalid number of squares in rank %d: got %d", ErrInvalidFEN, rank+1, file)
		}
	}

	return nil
}

// FEN returns the FEN representation of the position. Fields the position
// does not model are written as "w - - 0 1".
func (p *Position) FEN() string {
	var sb strings.Builder

	// Piece placement
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteString(" w - - 0 1")
	return sb.String()
}
