package battle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kasuganosora/pkmnsim/game/rng"
	"go.uber.org/zap"
)

var (
	// ErrInvalidChoice is returned when a choice is malformed or illegal for
	// the current request. The battle is left untouched.
	ErrInvalidChoice = errors.New("invalid choice")
	// ErrUnsupportedMode is returned for rulesets the engine does not implement.
	ErrUnsupportedMode = errors.New("unsupported mode")
	// ErrDesyncDetected reports a broken internal invariant. The battle ends
	// with an Error result and must be discarded.
	ErrDesyncDetected = errors.New("desync detected")
	// ErrInvalidTeam is returned when a team specification can't be built.
	ErrInvalidTeam = errors.New("invalid team")
	// ErrNotClonable is returned by Clone when the RNG source can't be copied.
	ErrNotClonable = errors.New("rng source is not clonable")
)

// Mode selects between reproducing the cartridge's historical bugs and the
// corrected mechanics.
type Mode uint8

const (
	Compat Mode = iota
	Strict
)

func (m Mode) String() string {
	switch m {
	case Compat:
		return "compat"
	case Strict:
		return "strict"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode parses "compat" or "strict".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "compat":
		return Compat, nil
	case "strict":
		return Strict, nil
	}
	return 0, fmt.Errorf("mode %q: %w", s, ErrUnsupportedMode)
}

const (
	// DefaultTurnLimit ends a battle in a tie.
	DefaultTurnLimit = 1000

	// rngTieGeneration is the first generation whose Compat speed ties are
	// broken by a coin flip instead of player 1 moving first.
	rngTieGeneration = 2
)

// Options configures a Battle.
type Options struct {
	Mode       Mode
	Generation int // 0 = 1; anything else is unsupported
	TurnLimit  int // 0 = DefaultTurnLimit

	SleepClause         bool
	FreezeClause        bool
	EndlessBattleClause bool

	Sink    Sink        // nil = no event log
	Logger  *zap.Logger // nil = zap.NewNop()
	RNG     rng.Source  // injectable for testing; nil = PSRNG from the seed
	TurnMgr TurnManager // nil = DefaultTurnManager
}

func (o *Options) normalize() error {
	if o.Generation == 0 {
		o.Generation = 1
	}
	if o.Generation != 1 {
		return fmt.Errorf("generation %d: %w", o.Generation, ErrUnsupportedMode)
	}
	if o.Mode != Compat && o.Mode != Strict {
		return fmt.Errorf("%s: %w", o.Mode, ErrUnsupportedMode)
	}
	if o.TurnLimit <= 0 {
		o.TurnLimit = DefaultTurnLimit
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.TurnMgr == nil {
		o.TurnMgr = DefaultTurnManager{}
	}
	return nil
}
