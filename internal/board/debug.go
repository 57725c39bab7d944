package board

import "github.com/rs/zerolog"

// DebugMoveValidation enables validation of every position produced by
// ApplyMove and GenerateMoves. Failures are logged, not returned.
var DebugMoveValidation = false

var logger = zerolog.Nop()

// SetLogger sets the logger used for debug validation. It must be called
// before positions are shared between goroutines.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// debugValidate logs structural invariant violations of a generated position.
func (p *Position) debugValidate(us Color, m Move) {
	if err := p.Validate(); err != nil {
		logger.Error().
			Err(err).
			Stringer("side", us).
			Stringer("move", m).
			Str("fen", p.FEN()).
			Msg("MOVEGEN: generated position failed validation")
	}
}
