package board

// Pre-computed attacker tables, indexed by the square of the attacked king.
// Built once in init and read-only afterwards.
var (
	knightAttackers [64]Bitboard
	pawnAttackers   [2][64]Bitboard // [defending Color][king Square]
)

// Direction is one of the eight ray directions walked from a king.
type Direction uint8

const (
	West Direction = iota
	East
	South
	North
	NorthWest
	NorthEast
	SouthWest
	SouthEast
)

var (
	orthogonal = [4]Direction{West, East, South, North}
	diagonal   = [4]Direction{NorthWest, NorthEast, SouthWest, SouthEast}
)

// rayShift is the square offset of one step in each direction.
var rayShift = [8]int{
	West:      -1,
	East:      +1,
	South:     -8,
	North:     +8,
	NorthWest: +7,
	NorthEast: +9,
	SouthWest: -9,
	SouthEast: -7,
}

// rayMask holds, for each direction, the squares from which one more step
// stays on the board without wrapping to the opposite file or rank.
var rayMask = [8]Bitboard{
	West:      NotFileA,            // 0xFEFEFEFEFEFEFEFE
	East:      NotFileH,            // 0x7F7F7F7F7F7F7F7F
	South:     NotRank1,            // 0xFFFFFFFFFFFFFF00
	North:     NotRank8,            // 0x00FFFFFFFFFFFFFF
	NorthWest: NotRank8 & NotFileA, // 0x00FEFEFEFEFEFEFE
	NorthEast: NotRank8 & NotFileH, // 0x007F7F7F7F7F7F7F
	SouthWest: NotRank1 & NotFileA, // 0xFEFEFEFEFEFEFE00
	SouthEast: NotRank1 & NotFileH, // 0x7F7F7F7F7F7F7F00
}

func init() {
	initKnightAttackers()
	initPawnAttackers()
}

func initKnightAttackers() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		// Knight moves are symmetric, so the attacker squares of sq are the
		// squares a knight on sq could jump to.
		attacks := Empty

		// Up 2, left/right 1
		attacks |= (bb << 17) & NotFileA // NNE
		attacks |= (bb << 15) & NotFileH // NNW
		attacks |= (bb >> 17) & NotFileH // SSW
		attacks |= (bb >> 15) & NotFileA // SSE

		// Up 1, left/right 2
		attacks |= (bb << 10) & NotFileAB // ENE
		attacks |= (bb << 6) & NotFileGH  // WNW
		attacks |= (bb >> 10) & NotFileGH // WSW
		attacks |= (bb >> 6) & NotFileAB  // ESE

		knightAttackers[sq] = attacks
	}
}

func initPawnAttackers() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		// A white king is attacked by black pawns standing diagonally above it.
		// Black pawns never stand on rank 8.
		pawnAttackers[White][sq] = (bb.NorthWest() | bb.NorthEast()) & NotRank8

		// A black king is attacked by white pawns diagonally below it.
		// White pawns never stand on rank 1.
		pawnAttackers[Black][sq] = (bb.SouthWest() | bb.SouthEast()) & NotRank1
	}
}

// KnightAttackers returns the squares from which a knight attacks sq.
func KnightAttackers(sq Square) Bitboard {
	return knightAttackers[sq]
}

// PawnAttackers returns the squares from which an enemy pawn attacks a king
// of color defender standing on sq.
func PawnAttackers(sq Square, defender Color) Bitboard {
	return pawnAttackers[defender][sq]
}

// RayMask returns the edge mask guarding one step in direction d.
func RayMask(d Direction) Bitboard {
	return rayMask[d]
}

// step moves every bit of b one square in direction d. Callers mask b with
// rayMask first.
func (d Direction) step(b Bitboard) Bitboard {
	if s := rayShift[d]; s > 0 {
		return b << s
	}
	return b >> -rayShift[d]
}

// RayBlocker walks from sq in direction d and returns the first occupied
// square as a bitboard, or Empty if the walk reaches the board edge.
func RayBlocker(sq Square, d Direction, occupied Bitboard) Bitboard {
	b := SquareBB(sq)
	mask := rayMask[d]
	for b&mask != 0 {
		b = d.step(b)
		if b&occupied != 0 {
			return b
		}
	}
	return Empty
}

// IsKingAttacked reports whether the king of color c is attacked by an enemy
// pawn, knight, bishop, rook or queen. Enemy king contact is not considered.
func (p *Position) IsKingAttacked(c Color) bool {
	them := c.Other()
	ksq := p.KingSquare[c]

	if pawnAttackers[c][ksq]&p.Pieces[them][Pawn] != 0 {
		return true
	}
	if knightAttackers[ksq]&p.Pieces[them][Knight] != 0 {
		return true
	}

	rooksQueens := p.Pieces[them][Rook] | p.Pieces[them][Queen]
	for _, d := range orthogonal {
		if RayBlocker(ksq, d, p.AllOccupied)&rooksQueens != 0 {
			return true
		}
	}

	bishopsQueens := p.Pieces[them][Bishop] | p.Pieces[them][Queen]
	for _, d := range diagonal {
		if RayBlocker(ksq, d, p.AllOccupied)&bishopsQueens != 0 {
			return true
		}
	}

	return false
}

// UpdateCheckFlags recomputes the check snapshot of both sides.
func (p *Position) UpdateCheckFlags() {
	p.InCheck[White] = p.IsKingAttacked(White)
	p.InCheck[Black] = p.IsKingAttacked(Black)
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	return [...]string{"W", "E", "S", "N", "NW", "NE", "SW", "SE"}[d]
}
