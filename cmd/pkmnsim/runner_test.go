package main

import (
	"context"
	"testing"

	"github.com/kasuganosora/pkmnsim/config"
	"github.com/kasuganosora/pkmnsim/game/battle"
	"github.com/kasuganosora/pkmnsim/replay"
	"github.com/kasuganosora/pkmnsim/session"
	"github.com/kasuganosora/pkmnsim/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testTeams() *config.TeamFile {
	return &config.TeamFile{Teams: []config.NamedTeam{
		{Name: "normal", Members: []battle.PokemonSpec{
			{Species: "Tauros", Moves: []string{"Body Slam", "Hyper Beam", "Blizzard", "Earthquake"}},
			{Species: "Chansey", Moves: []string{"Soft-Boiled", "Thunder Wave", "Ice Beam", "Seismic Toss"}},
		}},
		{Name: "psychic", Members: []battle.PokemonSpec{
			{Species: "Alakazam", Moves: []string{"Psychic", "Recover", "Thunder Wave", "Seismic Toss"}},
			{Species: "Starmie", Moves: []string{"Surf", "Thunderbolt", "Recover", "Blizzard"}},
		}},
		{Name: "heavy", Members: []battle.PokemonSpec{
			{Species: "Snorlax", Moves: []string{"Body Slam", "Earthquake", "Rest", "Amnesia"}},
			{Species: "Rhydon", Moves: []string{"Earthquake", "Rock Slide", "Substitute", "Body Slam"}},
		}},
	}}
}

func TestPair_CyclesDistinctTeams(t *testing.T) {
	r := &runner{teams: testTeams()}
	seen := map[[2]int]bool{}
	for i := 0; i < 6; i++ {
		a, b := r.pair(i)
		assert.NotEqual(t, a, b)
		seen[[2]int{a, b}] = true
	}
	assert.Len(t, seen, 6)
}

func TestSeeds_DifferPerBattle(t *testing.T) {
	r := &runner{seed: 42}
	b0, p1, p2 := r.seeds(0)
	b1, _, _ := r.seeds(1)
	assert.NotEqual(t, b0, b1)
	assert.NotEqual(t, p1, p2)

	again, _, _ := (&runner{seed: 42}).seeds(0)
	assert.Equal(t, b0, again)
}

func TestRun_ArchivesVerifiableReplays(t *testing.T) {
	db := testutil.SetupTestDB(t)
	c, ps := testutil.SetupTestCache(t)
	archive := replay.New(db, zap.NewNop())
	mgr := session.NewManager(session.Deps{Cache: c, PubSub: ps, Archive: archive}, session.Config{EventTail: 8})

	r := &runner{
		mgr:      mgr,
		teams:    testTeams(),
		opts:     battle.Options{Mode: battle.Compat, EndlessBattleClause: true},
		seed:     7,
		maxSteps: 2 * battle.DefaultTurnLimit,
		logger:   zap.NewNop(),
	}
	played := r.run(context.Background(), 4)
	assert.Equal(t, 4, played)

	archive.Stop(context.Background())
	n, err := archive.VerifyAll(context.Background(), played)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	tally, err := mgr.Tally(context.Background())
	require.NoError(t, err)
	var total int64
	for _, v := range tally {
		total += v
	}
	assert.Equal(t, int64(4), total)
}

func TestRun_StopsOnCancel(t *testing.T) {
	c, _ := testutil.SetupTestCache(t)
	mgr := session.NewManager(session.Deps{Cache: c}, session.Config{})
	r := &runner{mgr: mgr, teams: testTeams(), maxSteps: 10, logger: zap.NewNop()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Zero(t, r.run(ctx, 3))
}
