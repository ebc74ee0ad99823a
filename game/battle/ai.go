package battle

import "github.com/kasuganosora/pkmnsim/game/rng"

// Chooser picks a side's choice for the next step.
type Chooser interface {
	Choose(b *Battle, p Player) Choice
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func(b *Battle, p Player) Choice

func (f ChooserFunc) Choose(b *Battle, p Player) Choice { return f(b, p) }

// RandomChooser picks uniformly among the legal choices. It draws from its
// own RNG so it never disturbs the battle's stream.
type RandomChooser struct {
	RNG *rng.RNG
}

// NewRandomChooser seeds a chooser.
func NewRandomChooser(seed [4]uint16) *RandomChooser {
	return &RandomChooser{RNG: rng.New(rng.NewPSRNG(seed))}
}

func (r *RandomChooser) Choose(b *Battle, p Player) Choice {
	choices := b.Choices(p)
	if len(choices) == 0 {
		return Pass()
	}
	return choices[r.RNG.Range(uint32(len(choices)))]
}

// Play drives b to the end with the two choosers, stopping after maxSteps
// updates or on the first error. It returns the final result.
func Play(b *Battle, p1, p2 Chooser, maxSteps int) (Result, error) {
	res := b.Result()
	for i := 0; i < maxSteps && !res.Ended(); i++ {
		var c1, c2 Choice
		if b.started {
			c1, c2 = p1.Choose(b, P1), p2.Choose(b, P2)
		}
		var err error
		if res, err = b.Update(c1, c2); err != nil {
			return res, err
		}
	}
	return res, nil
}
