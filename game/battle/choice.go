package battle

import (
	"fmt"
	"strconv"
	"strings"
)

// ChoiceKind is the low two bits of a Choice.
type ChoiceKind uint8

const (
	ChoicePass ChoiceKind = iota
	ChoiceMove
	ChoiceSwitch
)

func (k ChoiceKind) String() string {
	switch k {
	case ChoicePass:
		return "pass"
	case ChoiceMove:
		return "move"
	case ChoiceSwitch:
		return "switch"
	}
	return "???"
}

// Choice is a player's action for one step, packed in a byte:
//
//	bits 0–1  kind
//	bits 2–3  modifier (always zero in generation I)
//	bits 4–7  1-based slot; move 0 is the forced/default move
//
// "move 4" is 0x41 and "switch 5" is 0x52.
type Choice struct {
	Kind ChoiceKind
	Slot uint8
}

// Pass, Move and Switch build choices.
func Pass() Choice            { return Choice{Kind: ChoicePass} }
func Move(slot uint8) Choice   { return Choice{Kind: ChoiceMove, Slot: slot} }
func Switch(slot uint8) Choice { return Choice{Kind: ChoiceSwitch, Slot: slot} }

// Encode packs c into its byte form.
func (c Choice) Encode() uint8 {
	return c.Slot<<4 | uint8(c.Kind)
}

// DecodeChoice is the inverse of Encode. It rejects any byte Encode can't
// produce from a well-formed choice.
func DecodeChoice(b uint8) (Choice, error) {
	kind := ChoiceKind(b & 0x03)
	mod := (b >> 2) & 0x03
	slot := b >> 4
	if mod != 0 {
		return Choice{}, fmt.Errorf("0x%02x: modifier %d: %w", b, mod, ErrInvalidChoice)
	}
	c := Choice{Kind: kind, Slot: slot}
	if err := c.wellFormed(); err != nil {
		return Choice{}, fmt.Errorf("0x%02x: %w", b, err)
	}
	return c, nil
}

func (c Choice) wellFormed() error {
	switch c.Kind {
	case ChoicePass:
		if c.Slot != 0 {
			return fmt.Errorf("pass with slot %d: %w", c.Slot, ErrInvalidChoice)
		}
	case ChoiceMove:
		if c.Slot > 4 {
			return fmt.Errorf("move %d: %w", c.Slot, ErrInvalidChoice)
		}
	case ChoiceSwitch:
		if c.Slot < 2 || c.Slot > maxTeamSize {
			return fmt.Errorf("switch %d: %w", c.Slot, ErrInvalidChoice)
		}
	default:
		return fmt.Errorf("kind %d: %w", c.Kind, ErrInvalidChoice)
	}
	return nil
}

func (c Choice) String() string {
	if c.Kind == ChoicePass {
		return "pass"
	}
	return c.Kind.String() + " " + strconv.Itoa(int(c.Slot))
}

// ParseChoice parses "pass", "move N" (0–4) or "switch N" (2–6).
func ParseChoice(s string) (Choice, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return Choice{}, fmt.Errorf("empty choice: %w", ErrInvalidChoice)
	}
	var kind ChoiceKind
	switch fields[0] {
	case "pass":
		if len(fields) != 1 {
			return Choice{}, fmt.Errorf("%q: %w", s, ErrInvalidChoice)
		}
		return Pass(), nil
	case "move":
		kind = ChoiceMove
	case "switch":
		kind = ChoiceSwitch
	default:
		return Choice{}, fmt.Errorf("%q: %w", s, ErrInvalidChoice)
	}
	if len(fields) != 2 {
		return Choice{}, fmt.Errorf("%q: %w", s, ErrInvalidChoice)
	}
	n, err := strconv.ParseUint(fields[1], 10, 8)
	if err != nil {
		return Choice{}, fmt.Errorf("%q: %w", s, ErrInvalidChoice)
	}
	c := Choice{Kind: kind, Slot: uint8(n)}
	if err := c.wellFormed(); err != nil {
		return Choice{}, err
	}
	return c, nil
}

// ---------------------------------------------------------------------------
//  Requests
// ---------------------------------------------------------------------------

// RequestKind is what a side is being asked for. Its values match the
// ChoiceKind a side is expected to answer with.
type RequestKind uint8

const (
	RequestPass RequestKind = iota
	RequestMove
	RequestSwitch
)

func (k RequestKind) String() string {
	return ChoiceKind(k).String()
}

// Request is the set of legal choices offered to one side.
type Request struct {
	Kind RequestKind
	// Forced means only "move 0" is a legal move: a lock (recharge, thrash,
	// rage, bide, charge, binding) decides the action.
	Forced bool
	// Trapped forbids switching.
	Trapped bool
	// Disabled marks move slots that can't be chosen.
	Disabled [4]bool
	// Switchable has bit n-1 set when roster position n may come in.
	Switchable uint8
	// Moves is the number of occupied move slots.
	Moves uint8
}

// Struggle reports whether the only move left is the default one.
func (r Request) Struggle() bool {
	if r.Kind != RequestMove || r.Forced {
		return false
	}
	for i := 0; i < int(r.Moves); i++ {
		if !r.Disabled[i] {
			return false
		}
	}
	return true
}

// Validate checks c against the request.
func (r Request) Validate(c Choice) error {
	if err := c.wellFormed(); err != nil {
		return err
	}
	switch r.Kind {
	case RequestPass:
		if c.Kind == ChoicePass {
			return nil
		}
	case RequestSwitch:
		if c.Kind == ChoiceSwitch && r.Switchable&(1<<(c.Slot-1)) != 0 {
			return nil
		}
	case RequestMove:
		switch c.Kind {
		case ChoiceMove:
			if c.Slot == 0 {
				if r.Forced || r.Struggle() {
					return nil
				}
				break
			}
			if !r.Forced && c.Slot <= r.Moves && !r.Disabled[c.Slot-1] {
				return nil
			}
		case ChoiceSwitch:
			if !r.Trapped && r.Switchable&(1<<(c.Slot-1)) != 0 {
				return nil
			}
		}
	}
	return fmt.Errorf("%s not allowed for %s request: %w", c, r.Kind, ErrInvalidChoice)
}

// Choices lists every legal choice in a stable order: moves then switches.
func (r Request) Choices() []Choice {
	var out []Choice
	switch r.Kind {
	case RequestPass:
		return []Choice{Pass()}
	case RequestMove:
		if r.Forced || r.Struggle() {
			out = append(out, Move(0))
		} else {
			for i := uint8(0); i < r.Moves; i++ {
				if !r.Disabled[i] {
					out = append(out, Move(i+1))
				}
			}
		}
		if r.Trapped {
			return out
		}
	}
	for n := uint8(2); n <= maxTeamSize; n++ {
		if r.Switchable&(1<<(n-1)) != 0 {
			out = append(out, Switch(n))
		}
	}
	return out
}

// moveRequest builds the request for p's active combatant.
func (b *Battle) moveRequest(p Player) Request {
	s := b.side(p)
	c := s.Active()
	r := Request{Kind: RequestMove, Switchable: s.switchable(), Moves: uint8(c.MoveCount())}
	for i := range c.Moves {
		r.Disabled[i] = !c.usable(i, b.mode)
	}
	switch {
	case c.Volatiles.Has(VolatileRecharging), c.Volatiles.Has(VolatileThrashing),
		c.Volatiles.Has(VolatileRage), c.Volatiles.Has(VolatileBide),
		c.Volatiles.Has(VolatileCharging), c.Volatiles.Has(VolatileTrapping):
		r.Forced = true
		r.Trapped = true
	case b.binding(p):
		r.Forced = true
	}
	return r
}

// Choices returns the legal choices for p right now.
func (b *Battle) Choices(p Player) []Choice {
	return b.side(p).Request.Choices()
}
