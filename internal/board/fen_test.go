package board

import (
	"errors"
	"testing"
)

func TestParseStartFEN(t *testing.T) {
	pos := mustParseFEN(t, StartFEN)
	start := NewPosition()

	if pos.Pieces != start.Pieces || pos.KingSquare != start.KingSquare {
		t.Errorf("ParseFEN(StartFEN) differs from NewPosition")
	}
	if pos.Occupied != start.Occupied || pos.AllOccupied != start.AllOccupied {
		t.Errorf("occupancy differs from NewPosition")
	}
	checkInvariants(t, pos)
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"7k/8/8/8/K6r/8/8/8 w - - 0 1",
		"QQQQQQQQ/8/8/8/8/8/8/k6K w - - 0 1",
	}

	for _, fen := range fens {
		pos := mustParseFEN(t, fen)
		checkInvariants(t, pos)
		if got := pos.FEN(); got != fen {
			t.Errorf("FEN() = %q, want %q", got, fen)
		}
	}
}

func TestParseFENIgnoresStateFields(t *testing.T) {
	a := mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq e3 12 40")
	b := mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R")
	if *a != *b {
		t.Errorf("state fields changed the parsed position")
	}
}

func TestParseFENComputesCheckFlags(t *testing.T) {
	pos := mustParseFEN(t, "4k3/8/8/8/1b6/8/8/4K3 w - - 0 1")
	if !pos.InCheck[White] || pos.InCheck[Black] {
		t.Errorf("InCheck = %v, want [true false]", pos.InCheck)
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want error
	}{
		{"empty", "", ErrInvalidFEN},
		{"seven ranks", "8/8/8/8/8/8/K6k", ErrInvalidFEN},
		{"bad piece", "8/8/8/8/8/8/8/K5xk", ErrInvalidFEN},
		{"long rank", "K6k1/8/8/8/8/8/8/8", ErrInvalidFEN},
		{"short rank", "K5k/8/8/8/8/8/8/8", ErrInvalidFEN},
		{"missing king", "8/8/8/8/8/8/8/K7", ErrInvalidFEN},
		{"two kings", "K7/8/8/8/8/8/8/K6k", ErrInvalidFEN},
		{"nine knights", "NNNNNNNN/N7/8/8/8/8/8/K6k", ErrStructuralEncoding},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseFEN(tc.fen); !errors.Is(err, tc.want) {
				t.Errorf("ParseFEN(%q) error = %v, want %v", tc.fen, err, tc.want)
			}
		})
	}

	for _, fen := range []string{"P7/8/8/8/8/8/8/K6k", "8/8/8/8/8/8/8/K2p3k"} {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) accepted a pawn on a back rank", fen)
		}
	}
}
