package board

// Invert rotates the position by 180 degrees in place: every square s of
// every list, bitboard and king becomes 63-s. Pieces keep their color. The
// two check flags are exchanged as stored, not recomputed, and the occupancy
// aggregates are rebuilt from the rotated fields.
func (p *Position) Invert() {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt < King; pt++ {
			p.Lists[c][pt], p.Pieces[c][pt] = p.Lists[c][pt].InvertWithBitboard()
		}
		p.KingSquare[c] = p.KingSquare[c].Rotate()
	}

	p.InCheck[White], p.InCheck[Black] = p.InCheck[Black], p.InCheck[White]

	p.updateOccupied()
}

// Inverted returns a rotated copy of the position, leaving p unchanged.
func (p *Position) Inverted() *Position {
	r := p.Copy()
	r.Invert()
	return r
}
