package main

import (
	"context"

	"github.com/kasuganosora/pkmnsim/config"
	"github.com/kasuganosora/pkmnsim/game/battle"
	"github.com/kasuganosora/pkmnsim/session"
	"go.uber.org/zap"
)

const golden = 0x9E3779B97F4A7C15

// runner plays a batch of seeded battles between random players.
type runner struct {
	mgr      *session.Manager
	teams    *config.TeamFile
	opts     battle.Options
	seed     uint64
	maxSteps int
	logger   *zap.Logger
}

// split spreads a 64-bit value over a battle seed.
func split(u uint64) [4]uint16 {
	return [4]uint16{uint16(u >> 48), uint16(u >> 32), uint16(u >> 16), uint16(u)}
}

// seeds returns the battle seed and the two players' seeds for battle i.
func (r *runner) seeds(i int) (b, p1, p2 [4]uint16) {
	s := r.seed + uint64(i)*golden
	return split(s), split(s ^ 0x5555555555555555), split(s ^ 0xAAAAAAAAAAAAAAAA)
}

// pair picks two different teams for battle i, cycling through every
// ordered pairing.
func (r *runner) pair(i int) (int, int) {
	n := len(r.teams.Teams)
	a := i % n
	b := (a + 1 + (i/n)%(n-1)) % n
	return a, b
}

// run plays up to n battles and returns how many finished. It stops early
// when ctx is cancelled.
func (r *runner) run(ctx context.Context, n int) int {
	played := 0
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		if _, err := r.one(ctx, i); err != nil {
			r.logger.Warn("battle failed", zap.Int("n", i), zap.Error(err))
			continue
		}
		played++
	}
	return played
}

func (r *runner) one(ctx context.Context, i int) (battle.Result, error) {
	a, b := r.pair(i)
	seed, s1, s2 := r.seeds(i)
	t1, t2 := r.teams.Teams[a], r.teams.Teams[b]

	id, err := r.mgr.Create(ctx, t1.Team(), t2.Team(), seed, r.opts)
	if err != nil {
		return battle.Result{}, err
	}
	res, err := r.mgr.Play(ctx, id, battle.NewRandomChooser(s1), battle.NewRandomChooser(s2), r.maxSteps)
	if err != nil {
		return res, err
	}
	fields := []zap.Field{
		zap.Int("n", i),
		zap.String("id", id),
		zap.String("p1", t1.Name),
		zap.String("p2", t2.Name),
		zap.Stringer("result", res.Kind),
	}
	if !res.Ended() {
		// step cap reached; the session stays in the cache until swept
		r.logger.Warn("battle unfinished", fields...)
		return res, nil
	}
	r.logger.Info("battle finished", fields...)
	return res, nil
}
