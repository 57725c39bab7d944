package board

import (
	"math/rand/v2"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func mustParseFEN(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func mustEmpty(t *testing.T, whiteKing, blackKing Square) *Position {
	t.Helper()
	pos, err := NewEmptyPosition(whiteKing, blackKing)
	if err != nil {
		t.Fatalf("NewEmptyPosition(%s, %s): %v", whiteKing, blackKing, err)
	}
	return pos
}

func mustPut(t *testing.T, pos *Position, c Color, pt PieceType, sq Square) {
	t.Helper()
	if err := pos.Put(c, pt, sq); err != nil {
		t.Fatalf("Put(%v, %v, %s): %v", c, pt, sq, err)
	}
}

// tracedAttack decides check by walking file/rank coordinates, independent
// of the bitboard shifts and edge masks.
func tracedAttack(p *Position, c Color) bool {
	them := c.Other()
	k := p.King(c)
	kf, kr := k.File(), k.Rank()
	onBoard := func(f, r int) bool { return f >= 0 && f < 8 && r >= 0 && r < 8 }

	rays := []struct {
		df, dr int
		diag   bool
	}{
		{-1, 0, false}, {1, 0, false}, {0, -1, false}, {0, 1, false},
		{-1, 1, true}, {1, 1, true}, {-1, -1, true}, {1, -1, true},
	}
	for _, ray := range rays {
		for f, r := kf+ray.df, kr+ray.dr; onBoard(f, r); f, r = f+ray.df, r+ray.dr {
			piece := p.PieceAt(NewSquare(f, r))
			if piece == NoPiece {
				continue
			}
			if piece.Color() == them {
				switch piece.Type() {
				case Queen:
					return true
				case Bishop:
					if ray.diag {
						return true
					}
				case Rook:
					if !ray.diag {
						return true
					}
				}
			}
			break
		}
	}

	jumps := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	for _, j := range jumps {
		f, r := kf+j[0], kr+j[1]
		if onBoard(f, r) && p.PieceAt(NewSquare(f, r)) == NewPiece(Knight, them) {
			return true
		}
	}

	// Enemy pawns attack from one rank ahead of the king in their direction
	// of travel: above a white king, below a black king.
	dr := 1
	if c == Black {
		dr = -1
	}
	for _, df := range [2]int{-1, 1} {
		f, r := kf+df, kr+dr
		if onBoard(f, r) && p.PieceAt(NewSquare(f, r)) == NewPiece(Pawn, them) {
			return true
		}
	}
	return false
}

// magicSliderAttack decides slider check with dragontoothmg's magic bitboards.
func magicSliderAttack(p *Position, c Color) bool {
	them := c.Other()
	k := uint8(p.King(c))
	occ := uint64(p.AllOccupied)
	rooksQueens := uint64(p.Pieces[them][Rook] | p.Pieces[them][Queen])
	bishopsQueens := uint64(p.Pieces[them][Bishop] | p.Pieces[them][Queen])
	return dragontoothmg.CalculateRookMoveBitboard(k, occ)&rooksQueens != 0 ||
		dragontoothmg.CalculateBishopMoveBitboard(k, occ)&bishopsQueens != 0
}

// randomPosition scatters up to n random pieces around two random kings.
// Placements that Put rejects are skipped.
func randomPosition(t *testing.T, r *rand.Rand, n int) *Position {
	t.Helper()
	wk := Square(r.IntN(64))
	bk := Square(r.IntN(64))
	for bk == wk {
		bk = Square(r.IntN(64))
	}
	pos := mustEmpty(t, wk, bk)
	for i := 0; i < n; i++ {
		c := Color(r.IntN(2))
		pt := PieceType(r.IntN(ListedTypes))
		_ = pos.Put(c, pt, Square(r.IntN(64)))
	}
	pos.UpdateCheckFlags()
	return pos
}

func checkInvariants(t *testing.T, p *Position) {
	t.Helper()
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v\n%s", err, p)
	}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt < King; pt++ {
			var want Bitboard
			for sq := range p.Lists[c][pt].Squares() {
				want |= 1 << sq
			}
			if got := p.Lists[c][pt].Bitboard(); got != want {
				t.Fatalf("%v %v: Bitboard() = %#x, OR of squares = %#x", c, pt, uint64(got), uint64(want))
			}
		}
	}
	if p.Occupied[White]&p.Occupied[Black] != 0 {
		t.Fatalf("side occupancies overlap")
	}
	if p.AllOccupied != p.Occupied[White]|p.Occupied[Black] {
		t.Fatalf("total occupancy is not the union of both sides")
	}
}
