package perft

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hailam/packedboard/internal/board"
)

// walk is a sequential reference count that shares nothing with Divide.
func walk(t *testing.T, p *board.Position, mover board.Color, depth int) uint64 {
	t.Helper()
	if depth == 0 {
		return 1
	}
	successors, err := p.GenerateMoves(mover)
	if err != nil {
		t.Fatalf("GenerateMoves: %v", err)
	}
	var nodes uint64
	for _, s := range successors {
		nodes += walk(t, s.Position, mover.Other(), depth-1)
	}
	return nodes
}

func mustParse(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func TestCount(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		depth    int
		expected uint64
	}{
		{"start depth 0", board.StartFEN, 0, 1},
		{"start depth 1", board.StartFEN, 1, 16},
		{"start depth 2", board.StartFEN, 2, 256},
		{"lone pawn depth 1", "4k3/8/8/8/8/8/P7/4K3 w - - 0 1", 1, 2},
		{"lone pawn depth 2", "4k3/8/8/8/8/8/P7/4K3 w - - 0 1", 2, 0},
		{"two pawns depth 2", "4k3/7p/8/8/8/8/P7/4K3 w - - 0 1", 2, 4},
		{"two pawns depth 3", "4k3/7p/8/8/8/8/P7/4K3 w - - 0 1", 3, 4},
		{"promotion", "k7/3P4/8/8/8/8/8/4K3 w - - 0 1", 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParse(t, tc.fen)
			got, err := Count(context.Background(), pos, board.White, tc.depth, Options{})
			if err != nil {
				t.Fatalf("Count: %v", err)
			}
			if got != tc.expected {
				t.Errorf("Count(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

func TestDivideStartingPosition(t *testing.T) {
	pos := board.NewPosition()
	parent := *pos

	divide, err := Divide(context.Background(), pos, board.White, 2, Options{Workers: 3})
	if err != nil {
		t.Fatalf("Divide: %v", err)
	}
	if len(divide) != 16 {
		t.Fatalf("Divide has %d root moves, want 16", len(divide))
	}
	for m, n := range divide {
		if n != 16 {
			t.Errorf("%s: %d nodes, want 16", m, n)
		}
	}
	if *pos != parent {
		t.Errorf("Divide modified the root position")
	}
}

func TestWorkersAgree(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"4k3/pp3ppp/8/2p5/3P4/8/PPP2PPP/4K3 w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	}

	for _, fen := range fens {
		for _, mover := range []board.Color{board.White, board.Black} {
			pos := mustParse(t, fen)
			want := walk(t, pos, mover, 3)
			for _, workers := range []int{1, 4, 0} {
				got, err := Count(context.Background(), pos, mover, 3, Options{Workers: workers})
				if err != nil {
					t.Fatalf("Count: %v", err)
				}
				if got != want {
					t.Errorf("%s %v workers=%d: Count = %d, sequential walk = %d", fen, mover, workers, got, want)
				}
			}
		}
	}
}

func TestDivideErrors(t *testing.T) {
	pos := board.NewPosition()

	if _, err := Divide(context.Background(), pos, board.White, 0, Options{}); !errors.Is(err, ErrDepth) {
		t.Errorf("depth 0: error = %v, want ErrDepth", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Count(ctx, pos, board.White, 3, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled context: error = %v, want context.Canceled", err)
	}

	full := mustParse(t, "k7/1P6/8/8/8/8/QQQQQQQQ/7K w - - 0 1")
	if _, err := Count(context.Background(), full, board.White, 1, Options{}); !errors.Is(err, board.ErrStructuralEncoding) {
		t.Errorf("ninth queen: error = %v, want ErrStructuralEncoding", err)
	}
}

func TestDivideLogsRootMoves(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	pos := mustParse(t, "4k3/8/8/8/8/8/P7/4K3 w - - 0 1")
	if _, err := Divide(context.Background(), pos, board.White, 1, Options{Logger: &log}); err != nil {
		t.Fatalf("Divide: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"move":"a2a3"`, `"move":"a2a4"`, `"nodes":1`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s: %s", want, out)
		}
	}
}
