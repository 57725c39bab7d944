package board

import (
	"fmt"
	"strings"
)

// Position is a board snapshot.
//
// For each side and each of Pawn..Queen the List is authoritative and the
// Bitboard at the same index is a cache derived from it. Kings are unique and
// kept only as a square. Occupied and AllOccupied aggregate the piece
// bitboards plus the king squares.
//
// InCheck holds snapshots taken by UpdateCheckFlags. Mutations do not
// invalidate them; callers recompute after every change.
//
// Position contains no references, so plain assignment copies it completely.
type Position struct {
	Lists  [2][ListedTypes]List
	Pieces [2][ListedTypes]Bitboard

	KingSquare [2]Square

	// Occupancy bitboards (cached for efficiency)
	Occupied    [2]Bitboard // All pieces of each color
	AllOccupied Bitboard    // All pieces on the board

	InCheck [2]bool
}

// NewPosition creates the starting position.
func NewPosition() *Position {
	p := &Position{}
	p.Lists[White] = [ListedTypes]List{
		Pawn:   MustEncodeList(A2, B2, C2, D2, E2, F2, G2, H2),
		Knight: MustEncodeList(B1, G1),
		Bishop: MustEncodeList(C1, F1),
		Rook:   MustEncodeList(A1, H1),
		Queen:  MustEncodeList(D1),
	}
	p.Lists[Black] = [ListedTypes]List{
		Pawn:   MustEncodeList(A7, B7, C7, D7, E7, F7, G7, H7),
		Knight: MustEncodeList(B8, G8),
		Bishop: MustEncodeList(C8, F8),
		Rook:   MustEncodeList(A8, H8),
		Queen:  MustEncodeList(D8),
	}
	p.KingSquare = [2]Square{E1, E8}
	p.updatePieces()
	p.updateOccupied()
	return p
}

// NewEmptyPosition creates a position holding only the two kings.
// Check flags are left false; call UpdateCheckFlags after adding pieces.
func NewEmptyPosition(whiteKing, blackKing Square) (*Position, error) {
	if !whiteKing.IsValid() || !blackKing.IsValid() {
		return nil, fmt.Errorf("%w: king square outside 0..63", ErrStructuralEncoding)
	}
	if whiteKing == blackKing {
		return nil, fmt.Errorf("%w: both kings on %s", ErrSquareOccupied, whiteKing)
	}
	p := &Position{KingSquare: [2]Square{whiteKing, blackKing}}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt < King; pt++ {
			p.Lists[c][pt] = EmptyList
		}
	}
	p.updateOccupied()
	return p, nil
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// Put places a piece on an empty square. Placing a King moves that side's
// king. Check flags are not updated.
func (p *Position) Put(c Color, pt PieceType, sq Square) error {
	if c >= NoColor || pt >= NoPieceType {
		return fmt.Errorf("put %v %v: unknown piece", c, pt)
	}
	if !sq.IsValid() {
		return fmt.Errorf("%w: square %d outside 0..63", ErrStructuralEncoding, sq)
	}
	if !p.IsEmpty(sq) {
		return fmt.Errorf("put %v %v on %s: %w", c, pt, sq, ErrSquareOccupied)
	}

	if pt == King {
		bb := SquareBB(p.KingSquare[c]) | SquareBB(sq)
		p.KingSquare[c] = sq
		p.Occupied[c] ^= bb
		p.AllOccupied ^= bb
		return nil
	}

	if pt == Pawn && SquareBB(sq)&(Rank1|Rank8) != 0 {
		return fmt.Errorf("put %v pawn on %s: pawns cannot be on rank 1 or 8", c, sq)
	}
	if p.Lists[c][pt].Len() == MaxListLen {
		return fmt.Errorf("%w: %v already has %d %vs", ErrStructuralEncoding, c, MaxListLen, pt)
	}
	p.addPiece(c, pt, sq)
	return nil
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)

	// Check if square is occupied
	if p.AllOccupied&bb == 0 {
		return NoPiece
	}

	// Find the color
	var c Color
	if p.Occupied[White]&bb != 0 {
		c = White
	} else {
		c = Black
	}

	if p.KingSquare[c] == sq {
		return NewPiece(King, c)
	}
	for pt := Pawn; pt < King; pt++ {
		if p.Pieces[c][pt]&bb != 0 {
			return NewPiece(pt, c)
		}
	}

	return NoPiece
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.AllOccupied&SquareBB(sq) == 0
}

// ListOf returns the location list of a listed piece type.
func (p *Position) ListOf(c Color, pt PieceType) List {
	return p.Lists[c][pt]
}

// PiecesOf returns the bitboard of a piece type. For King it is the single
// king square.
func (p *Position) PiecesOf(c Color, pt PieceType) Bitboard {
	if pt == King {
		return SquareBB(p.KingSquare[c])
	}
	return p.Pieces[c][pt]
}

// King returns the king square of the given side.
func (p *Position) King(c Color) Square {
	return p.KingSquare[c]
}

// InCheckFlag returns the check snapshot of the given side.
func (p *Position) InCheckFlag(c Color) bool {
	return p.InCheck[c]
}

// addPiece adds a listed piece and updates every derived field.
func (p *Position) addPiece(c Color, pt PieceType, sq Square) {
	bb := SquareBB(sq)
	p.Lists[c][pt] = p.Lists[c][pt].Add(sq)
	p.Pieces[c][pt] |= bb
	p.Occupied[c] |= bb
	p.AllOccupied |= bb
}

// removePiece removes a listed piece known to be on sq.
func (p *Position) removePiece(c Color, pt PieceType, sq Square) {
	bb := SquareBB(sq)
	p.Lists[c][pt] = p.Lists[c][pt].Remove(sq)
	p.Pieces[c][pt] &^= bb
	p.Occupied[c] &^= bb
	p.AllOccupied &^= bb
}

// movePiece moves a listed piece from one square to an empty square.
func (p *Position) movePiece(c Color, pt PieceType, from, to Square) {
	moveBB := SquareBB(from) | SquareBB(to)
	p.Lists[c][pt] = p.Lists[c][pt].Remove(from).Add(to)
	p.Pieces[c][pt] ^= moveBB
	p.Occupied[c] ^= moveBB
	p.AllOccupied ^= moveBB
}

// updatePieces rederives every piece bitboard from its list.
func (p *Position) updatePieces() {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt < King; pt++ {
			p.Pieces[c][pt] = p.Lists[c][pt].Bitboard()
		}
	}
}

// updateOccupied recalculates occupancy bitboards from piece bitboards.
func (p *Position) updateOccupied() {
	for c := White; c <= Black; c++ {
		occ := SquareBB(p.KingSquare[c])
		for pt := Pawn; pt < King; pt++ {
			occ |= p.Pieces[c][pt]
		}
		p.Occupied[c] = occ
	}
	p.AllOccupied = p.Occupied[White] | p.Occupied[Black]
}

// Validate checks the structural invariants: every list is well formed and
// matches its bitboard, no two pieces share a square, no pawn stands on a
// back rank, and the occupancy aggregates are consistent. Check flags are
// not examined.
func (p *Position) Validate() error {
	var seen Bitboard
	for c := White; c <= Black; c++ {
		ksq := p.KingSquare[c]
		if !ksq.IsValid() {
			return fmt.Errorf("%w: %v king on %d", ErrStructuralEncoding, c, ksq)
		}
		if seen.IsSet(ksq) {
			return fmt.Errorf("%v king on %s: %w", c, ksq, ErrSquareOccupied)
		}
		seen = seen.Set(ksq)
		occ := SquareBB(ksq)

		for pt := Pawn; pt < King; pt++ {
			l := p.Lists[c][pt]
			if err := l.validate(); err != nil {
				return fmt.Errorf("%v %v list: %w", c, pt, err)
			}
			bb := l.Bitboard()
			if bb != p.Pieces[c][pt] {
				return fmt.Errorf("%v %v bitboard %#016x does not match list %v",
					c, pt, uint64(p.Pieces[c][pt]), l)
			}
			if seen&bb != 0 {
				return fmt.Errorf("%v %v on %v: %w", c, pt, (seen & bb).Squares(), ErrSquareOccupied)
			}
			seen |= bb
			occ |= bb
		}

		if occ != p.Occupied[c] {
			return fmt.Errorf("%v occupancy %#016x, want %#016x", c, uint64(p.Occupied[c]), uint64(occ))
		}
	}

	if (p.Pieces[White][Pawn]|p.Pieces[Black][Pawn])&(Rank1|Rank8) != 0 {
		return fmt.Errorf("pawns cannot be on rank 1 or 8")
	}
	if p.Occupied[White]&p.Occupied[Black] != 0 {
		return fmt.Errorf("side occupancies overlap on %v", (p.Occupied[White] & p.Occupied[Black]).Squares())
	}
	if p.AllOccupied != p.Occupied[White]|p.Occupied[Black] {
		return fmt.Errorf("total occupancy %#016x is not the union of both sides", uint64(p.AllOccupied))
	}
	return nil
}

// Progress would advance turn, castling rights, en passant rights and the
// halfmove clock. None of that state is modelled.
func (p *Position) Progress() error {
	return fmt.Errorf("progress: turn, castling, en passant and halfmove bookkeeping: %w", ErrUnimplemented)
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "White in check: %t\n", p.InCheck[White])
	fmt.Fprintf(&sb, "Black in check: %t\n", p.InCheck[Black])
	return sb.String()
}
