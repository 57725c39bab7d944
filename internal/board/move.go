package board

// Move encodes a pawn move in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-13: promotion piece (0=Knight, 1=Bishop, 2=Rook, 3=Queen)
// bit 14:     promotion flag
// bit 15:     capture flag
type Move uint16

// Move flags
const (
	FlagPromotion uint16 = 1 << 14
	FlagCapture   uint16 = 1 << 15
)

// NoMove represents an invalid or null move.
const NoMove Move = 0

// NewMove creates a non-capturing, non-promoting move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// NewCapture creates a capturing move.
func NewCapture(from, to Square) Move {
	return NewMove(from, to) | Move(FlagCapture)
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	// promo: Knight=0, Bishop=1, Rook=2, Queen=3
	promoIdx := promo - Knight
	return Move(from) | Move(to)<<6 | Move(promoIdx)<<12 | Move(FlagPromotion)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Promotion returns the promotion piece type (only valid if IsPromotion() is true).
func (m Move) Promotion() PieceType {
	return PieceType((m>>12)&3) + Knight
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return uint16(m)&FlagPromotion != 0
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return uint16(m)&FlagCapture != 0
}

// IsDoublePush returns true if the move advances two ranks.
func (m Move) IsDoublePush() bool {
	d := int(m.To()) - int(m.From())
	return d == 16 || d == -16
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()

	if m.IsPromotion() {
		promoChars := []byte{'n', 'b', 'r', 'q'}
		s += string(promoChars[m.Promotion()-Knight])
	}

	return s
}
