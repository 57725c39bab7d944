package board

import "fmt"

// Successor is a position produced by one pawn move. Each successor owns its
// Position; nothing is shared with the parent or with other successors.
type Successor struct {
	Move     Move
	Position *Position
}

// GenerateMoves generates the pseudo-legal pawn moves of side us. Moves that
// leave us in check are not filtered out. Check flags of every successor are
// recomputed for both sides.
func (p *Position) GenerateMoves(us Color) ([]Successor, error) {
	them := us.Other()
	// The enemy king is never a capture target.
	targets := p.Occupied[them] &^ SquareBB(p.KingSquare[them])

	var moves []Move
	for from := range p.Lists[us][Pawn].Squares() {
		moves = p.appendPawnMoves(moves, us, from, targets)
	}

	successors := make([]Successor, 0, len(moves))
	for _, m := range moves {
		np, err := p.ApplyMove(us, m)
		if err != nil {
			return nil, err
		}
		successors = append(successors, Successor{Move: m, Position: np})
	}

	if DebugMoveValidation {
		logger.Debug().
			Stringer("side", us).
			Int("moves", len(successors)).
			Msg("generated pawn moves")
	}
	return successors, nil
}

// GeneratePieceMoves generates the moves of one piece type. Only pawns are
// supported.
func (p *Position) GeneratePieceMoves(us Color, pt PieceType) ([]Successor, error) {
	if pt != Pawn {
		return nil, fmt.Errorf("generate %v moves: %w", pt, ErrUnimplemented)
	}
	return p.GenerateMoves(us)
}

// appendPawnMoves appends the moves of the pawn of side us on from.
func (p *Position) appendPawnMoves(moves []Move, us Color, from Square, targets Bitboard) []Move {
	bb := SquareBB(from)

	var push, double, left, right Bitboard
	var promotionRank Bitboard

	// The diagonal shifts drop targets that wrapped around the a/h files, so
	// a pawn on the a-file has no left capture and one on the h-file no right.
	if us == White {
		push = bb.North()
		if bb&Rank2 != 0 {
			double = push.North()
		}
		left = bb.NorthWest()
		right = bb.NorthEast()
		promotionRank = Rank8
	} else {
		push = bb.South()
		if bb&Rank7 != 0 {
			double = push.South()
		}
		left = bb.SouthWest()
		right = bb.SouthEast()
		promotionRank = Rank1
	}

	if push != 0 && push&p.AllOccupied == 0 {
		to := push.LSB()
		if push&promotionRank != 0 {
			moves = append(moves, NewPromotion(from, to, Queen))
		} else {
			moves = append(moves, NewMove(from, to))
		}

		if double != 0 && double&p.AllOccupied == 0 {
			moves = append(moves, NewMove(from, double.LSB()))
		}
	}

	for _, target := range [2]Bitboard{left, right} {
		if target&targets == 0 {
			continue
		}
		to := target.LSB()
		if target&promotionRank != 0 {
			moves = append(moves, NewPromotion(from, to, Queen)|Move(FlagCapture))
		} else {
			moves = append(moves, NewCapture(from, to))
		}
	}

	return moves
}

// ApplyMove returns the position after the pawn move m by side us. The
// receiver is not modified; the work happens on a copy that is returned only
// when every step succeeds. Both check flags of the result are recomputed.
//
// m must have pawn geometry (as produced by GenerateMoves); only occupancy
// and capture targets are checked here.
func (p *Position) ApplyMove(us Color, m Move) (*Position, error) {
	from, to := m.From(), m.To()

	if p.Pieces[us][Pawn]&SquareBB(from) == 0 {
		if piece := p.PieceAt(from); piece.Color() == us {
			return nil, fmt.Errorf("apply %s: %v moves: %w", m, piece.Type(), ErrUnimplemented)
		}
		return nil, fmt.Errorf("apply %s: no %v pawn on %s", m, us, from)
	}
	if m.IsPromotion() && m.Promotion() != Queen {
		return nil, fmt.Errorf("apply %s: %v promotion: %w", m, m.Promotion(), ErrUnimplemented)
	}

	np := p.Copy()

	if m.IsCapture() {
		if err := np.capture(us.Other(), to); err != nil {
			return nil, fmt.Errorf("apply %s: %w", m, err)
		}
	} else if !np.IsEmpty(to) {
		return nil, fmt.Errorf("apply %s: %w", m, ErrSquareOccupied)
	}

	if m.IsPromotion() {
		if np.Lists[us][Queen].Len() == MaxListLen {
			return nil, fmt.Errorf("apply %s: %w: %v already has %d queens",
				m, ErrStructuralEncoding, us, MaxListLen)
		}
		np.removePiece(us, Pawn, from)
		np.addPiece(us, Queen, to)
	} else {
		np.movePiece(us, Pawn, from, to)
	}

	np.UpdateCheckFlags()

	if DebugMoveValidation {
		np.debugValidate(us, m)
	}
	return np, nil
}

// capture removes the piece of side them on sq, testing Pawn, Knight,
// Bishop, Rook and Queen in that order.
func (p *Position) capture(them Color, sq Square) error {
	bb := SquareBB(sq)
	for pt := Pawn; pt < King; pt++ {
		if p.Pieces[them][pt]&bb != 0 {
			p.removePiece(them, pt, sq)
			return nil
		}
	}
	if p.KingSquare[them] == sq {
		return fmt.Errorf("%v king on %s: %w", them, sq, ErrInvalidCaptureTarget)
	}
	return fmt.Errorf("no %v piece on %s: %w", them, sq, ErrInvalidCaptureTarget)
}
