// Package perft counts the leaves of the pawn-move successor tree. It is the
// driver-side check that generation, cloning and check-flag recomputation
// stay consistent over many plies.
package perft

import (
	"context"
	"errors"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hailam/packedboard/internal/board"
)

// ErrDepth is returned by Divide for a depth below 1.
var ErrDepth = errors.New("perft: depth must be at least 1")

// Options configures a perft run.
type Options struct {
	// Workers bounds the number of root subtrees counted at once.
	// Zero or less means runtime.GOMAXPROCS(0).
	Workers int

	// Logger receives one debug line per root move. Nil disables logging.
	Logger *zerolog.Logger
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return o.Logger
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}

// Count returns the number of leaf positions reached after depth plies of
// pawn moves, starting with mover and alternating sides.
func Count(ctx context.Context, pos *board.Position, mover board.Color, depth int, opts Options) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	divide, err := Divide(ctx, pos, mover, depth, opts)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, n := range divide {
		total += n
	}
	return total, nil
}

// Divide returns the leaf count below each root move. Root subtrees are
// counted concurrently; each worker walks its own successor position.
func Divide(ctx context.Context, pos *board.Position, mover board.Color, depth int, opts Options) (map[board.Move]uint64, error) {
	if depth < 1 {
		return nil, ErrDepth
	}

	roots, err := pos.GenerateMoves(mover)
	if err != nil {
		return nil, err
	}

	counts := make([]uint64, len(roots))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for i, root := range roots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := count(root.Position, mover.Other(), depth-1)
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log := opts.logger()
	result := make(map[board.Move]uint64, len(roots))
	for i, root := range roots {
		result[root.Move] = counts[i]
		log.Debug().
			Stringer("move", root.Move).
			Uint64("nodes", counts[i]).
			Msg("divide")
	}
	return result, nil
}

func count(pos *board.Position, mover board.Color, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}

	successors, err := pos.GenerateMoves(mover)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(successors)), nil
	}

	var nodes uint64
	for _, s := range successors {
		n, err := count(s.Position, mover.Other(), depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}
