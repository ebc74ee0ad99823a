package battle

import (
	"fmt"

	"github.com/kasuganosora/pkmnsim/game/data"
)

// PokemonSpec describes one team member. Zero DVs/StatExp pointers mean the
// maximum spread; a zero level means 100.
type PokemonSpec struct {
	Species string        `mapstructure:"species" json:"species"`
	Level   uint8         `mapstructure:"level" json:"level,omitempty"`
	Moves   []string      `mapstructure:"moves" json:"moves"`
	DVs     *data.DVs     `mapstructure:"dvs" json:"dvs,omitempty"`
	StatExp *data.StatExp `mapstructure:"stat_exp" json:"stat_exp,omitempty"`
}

// Team is an ordered roster of one to six members; the first leads.
type Team []PokemonSpec

const maxTeamSize = 6

// maxPP is the PP of a move with three PP Ups applied.
func maxPP(base uint8) uint8 {
	return base + 3*(base/5)
}

func newCombatant(spec PokemonSpec) (*Combatant, error) {
	sp, ok := data.LookupSpecies(spec.Species)
	if !ok {
		return nil, fmt.Errorf("unknown species %q: %w", spec.Species, ErrInvalidTeam)
	}
	level := spec.Level
	if level == 0 {
		level = 100
	}
	if level > 100 {
		return nil, fmt.Errorf("%s: level %d: %w", sp.Name, level, ErrInvalidTeam)
	}
	if len(spec.Moves) == 0 || len(spec.Moves) > 4 {
		return nil, fmt.Errorf("%s: %d moves: %w", sp.Name, len(spec.Moves), ErrInvalidTeam)
	}
	dvs := data.MaxDVs
	if spec.DVs != nil {
		dvs = *spec.DVs
		if dvs.Atk > 15 || dvs.Def > 15 || dvs.Spe > 15 || dvs.Spc > 15 {
			return nil, fmt.Errorf("%s: DV out of range: %w", sp.Name, ErrInvalidTeam)
		}
	}
	exp := data.MaxStatExpAll
	if spec.StatExp != nil {
		exp = *spec.StatExp
	}

	c := &Combatant{
		Species: sp,
		Level:   level,
		Types:   sp.Types,
		Stored:  data.CalcStats(sp.Base, dvs, exp, level),
	}
	c.HP = c.Stored.HP
	c.Stats = c.Stored
	seen := map[data.MoveID]bool{}
	for i, name := range spec.Moves {
		m, ok := data.LookupMove(name)
		if !ok || m.ID == data.MoveStruggle {
			return nil, fmt.Errorf("%s: unknown move %q: %w", sp.Name, name, ErrInvalidTeam)
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("%s: duplicate move %s: %w", sp.Name, m.Name, ErrInvalidTeam)
		}
		seen[m.ID] = true
		pp := maxPP(m.PP)
		c.Moves[i] = MoveSlot{ID: m.ID, PP: int8(pp), MaxPP: pp}
	}
	return c, nil
}

func newRoster(team Team) ([]*Combatant, error) {
	if len(team) == 0 || len(team) > maxTeamSize {
		return nil, fmt.Errorf("team of %d: %w", len(team), ErrInvalidTeam)
	}
	out := make([]*Combatant, len(team))
	for i, spec := range team {
		c, err := newCombatant(spec)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i+1, err)
		}
		out[i] = c
	}
	return out, nil
}
