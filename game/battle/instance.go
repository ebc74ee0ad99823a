package battle

import (
	"fmt"

	"github.com/kasuganosora/pkmnsim/game/rng"
	"go.uber.org/zap"
)

// Battle is a complete single battle between two sides. It is driven one
// step at a time by Update and owns all of its state; it is not safe for
// concurrent use.
type Battle struct {
	sides [2]*Side
	turn  uint16

	result Result
	rng    *rng.RNG
	mode   Mode
	opts   Options
	sink   Sink
	logger *zap.Logger

	// lastDamage is the most recent damage dealt by anyone, as the cartridge
	// keeps it. Compat Counter and Bide read it.
	lastDamage uint16

	started bool
	// halted is set when a Compat division by zero freezes the game.
	halted bool
	// err is the first broken invariant seen during a step.
	err error
}

// New builds a battle from two teams. seed feeds the default PSRNG unless
// opts.RNG supplies a source.
func New(p1, p2 Team, seed [4]uint16, opts Options) (*Battle, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	b := &Battle{
		mode:   opts.Mode,
		opts:   opts,
		sink:   opts.Sink,
		logger: opts.Logger,
	}
	src := opts.RNG
	if src == nil {
		src = rng.NewPSRNG(seed)
	}
	b.rng = rng.New(src)
	for i, team := range [2]Team{p1, p2} {
		roster, err := newRoster(team)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", Player(i), err)
		}
		b.sides[i] = &Side{Team: roster}
	}
	return b, nil
}

func (b *Battle) side(p Player) *Side         { return b.sides[p] }
func (b *Battle) active(p Player) *Combatant { return b.sides[p].Active() }

func (b *Battle) emit(e Event) {
	if b.sink != nil {
		b.sink.Emit(e)
	}
}

// Side returns player p's side for inspection.
func (b *Battle) Side(p Player) *Side { return b.sides[p] }

// Turn returns the current turn number; 0 before the leads are sent out.
func (b *Battle) Turn() uint16 { return b.turn }

// Result returns the outcome of the latest step.
func (b *Battle) Result() Result { return b.result }

// Mode returns the ruleset the battle runs under.
func (b *Battle) Mode() Mode { return b.mode }

// RNG returns the battle's random source wrapper.
func (b *Battle) RNG() *rng.RNG { return b.rng }

// SetSink replaces the event sink; nil disables logging.
func (b *Battle) SetSink(s Sink) { b.sink = s }

// Clone returns an independent copy of the battle for search. The copy has
// no event sink. It fails when the RNG source can't be copied.
func (b *Battle) Clone() (*Battle, error) {
	r := b.rng.Clone()
	if r == nil {
		return nil, ErrNotClonable
	}
	cp := *b
	cp.rng = r
	cp.sink = nil
	for i, s := range b.sides {
		cp.sides[i] = s.clone()
	}
	return &cp, nil
}

// divideByZero ends the battle the way the cartridge freezes when a
// defense of zero reaches the formula.
func (b *Battle) divideByZero(p Player) {
	b.logger.Warn("division by zero in damage formula", zap.Stringer("player", p), zap.Uint16("turn", b.turn))
	b.halted = true
}

// desync records a broken invariant.
func (b *Battle) desync(err error) {
	if b.err == nil {
		b.err = err
	}
	b.halted = true
}

// Update advances the battle by one step with both players' choices. Both
// choices are validated before anything changes; an invalid choice returns
// ErrInvalidChoice and leaves the battle as it was.
//
// The first call must be (pass, pass) and sends out both leads.
func (b *Battle) Update(c1, c2 Choice) (Result, error) {
	if b.result.Ended() {
		return b.result, nil
	}
	for p, c := range [2]Choice{c1, c2} {
		if err := b.sides[p].Request.Validate(c); err != nil {
			return b.result, fmt.Errorf("%s: %w", Player(p), err)
		}
	}

	switch {
	case !b.started:
		b.start()
	case b.sides[P1].Request.Kind == RequestSwitch || b.sides[P2].Request.Kind == RequestSwitch:
		for p, c := range [2]Choice{c1, c2} {
			if c.Kind == ChoiceSwitch {
				b.switchIn(Player(p), int(c.Slot))
			}
		}
	default:
		b.playTurn(c1, c2)
	}
	b.check()
	return b.finish()
}

func (b *Battle) start() {
	b.started = true
	for p := range b.sides {
		b.emitSwitch(Player(p))
	}
}

// playTurn runs one full turn: ordered actions, then residual effects.
func (b *Battle) playTurn(c1, c2 Choice) {
	for p, c := range [2]Choice{c1, c2} {
		s := b.sides[p]
		s.lastHit.damage, s.lastHit.move = 0, 0
		if c.Kind == ChoiceMove {
			s.lastSelected = b.plannedMove(Player(p), c)
		}
	}

	for _, a := range b.orderActions(c1, c2) {
		// a faint ends the action phase
		if b.halted || b.active(P1).Fainted() || b.active(P2).Fainted() {
			break
		}
		b.runAction(a)
	}
	if b.halted {
		return
	}
	for _, p := range [2]Player{P1, P2} {
		b.residual(p)
	}
	for _, p := range [2]Player{P1, P2} {
		b.dropVolatile(p, VolatileFlinch)
	}
}

// switchIn brings roster position n of p to the front.
func (b *Battle) switchIn(p Player, n int) {
	s := b.side(p)
	if n < 2 || n > len(s.Team) || s.Team[n-1].Fainted() {
		b.desync(fmt.Errorf("%s switch to position %d", p, n))
		return
	}
	b.switchOut(p)
	s.swap(n)
	in := s.Active()
	in.recalcAll()
	in.applyStatusDrop()
	s.lastSelected, s.lastUsed = 0, 0
	b.emitSwitch(p)
}

// switchOut resets what the leaving combatant loses: volatiles, stages,
// screens and changed types. Bad poison becomes regular poison; only
// Strict resets its counter.
func (b *Battle) switchOut(p Player) {
	c := b.active(p)
	b.clearVolatiles(p)
	c.Boosts = [6]int8{}
	c.Types = c.Species.Types
	if c.Status == StatusToxic {
		c.Status = StatusPoison
	}
	if b.mode == Strict {
		c.ToxicCounter = 0
	}
	b.side(p).Conditions = Conditions{}
}

func (b *Battle) emitSwitch(p Player) {
	c := b.active(p)
	b.emit(&EventSwitch{Player: p, Species: c.Species.ID, Level: c.Level, HP: c.HP, MaxHP: c.MaxHP()})
}

// check verifies the invariants every step must keep.
func (b *Battle) check() {
	for p, s := range b.sides {
		for i, c := range s.Team {
			if c.HP > c.MaxHP() {
				b.desync(fmt.Errorf("%s position %d: hp %d > %d", Player(p), i+1, c.HP, c.MaxHP()))
			}
		}
	}
}

// finish decides the outcome of the step and the next requests.
func (b *Battle) finish() (Result, error) {
	if b.err != nil {
		b.end(ResultError)
		b.logger.Error("battle desync", zap.Error(b.err))
		return b.result, fmt.Errorf("%w: %v", ErrDesyncDetected, b.err)
	}
	if b.halted {
		b.end(ResultError)
		return b.result, nil
	}
	if kind := b.outcome(); kind != ResultNone {
		b.end(kind)
		return b.result, nil
	}

	p1, p2 := b.active(P1).Fainted(), b.active(P2).Fainted()
	if p1 || p2 {
		for p, fainted := range [2]bool{p1, p2} {
			s := b.sides[p]
			if fainted {
				s.Request = Request{Kind: RequestSwitch, Switchable: s.switchable()}
			} else {
				s.Request = Request{Kind: RequestPass}
			}
		}
		b.result = Result{P1: b.sides[P1].Request.Kind, P2: b.sides[P2].Request.Kind}
		return b.result, nil
	}

	if int(b.turn)+1 >= b.opts.TurnLimit {
		b.end(ResultTie)
		return b.result, nil
	}
	b.turn++
	b.emit(&EventTurn{Turn: b.turn})
	for p := range b.sides {
		b.sides[p].Request = b.moveRequest(Player(p))
	}
	b.result = Result{P1: RequestMove, P2: RequestMove}
	return b.result, nil
}

func (b *Battle) end(kind ResultKind) {
	for _, s := range b.sides {
		s.Request = Request{Kind: RequestPass}
	}
	b.result = Result{Kind: kind}
	switch kind {
	case ResultWin:
		b.emit(&EventWin{Player: P1})
	case ResultLose:
		b.emit(&EventWin{Player: P2})
	case ResultTie:
		b.emit(&EventTie{})
	}
	b.logger.Debug("battle ended", zap.Stringer("result", kind), zap.Uint16("turn", b.turn))
}
