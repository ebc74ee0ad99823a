package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kasuganosora/pkmnsim/game/battle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.yaml", "log:\n  debug: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "compat", cfg.Engine.Mode)
	assert.Equal(t, battle.DefaultTurnLimit, cfg.Engine.TurnLimit)
	assert.True(t, cfg.Engine.EndlessBattleClause)
	assert.Equal(t, "sqlite", cfg.Database.Mode)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	assert.Equal(t, time.Minute, cfg.Session.SweepInterval)
	assert.Equal(t, 30*time.Second, cfg.Cache.LocalGCInterval)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.yaml", `
engine:
  mode: strict
  turn_limit: 50
  sleep_clause: true
database:
  mode: mysql
  mysql_dsn: "u:p@tcp(localhost:3306)/pkmn"
session:
  idle_ttl: 5s
`))
	require.NoError(t, err)
	opts, err := cfg.Engine.Options()
	require.NoError(t, err)
	assert.Equal(t, battle.Strict, opts.Mode)
	assert.Equal(t, 50, opts.TurnLimit)
	assert.True(t, opts.SleepClause)
	assert.False(t, opts.FreezeClause)
	assert.Equal(t, "mysql", cfg.Database.Mode)
	assert.Equal(t, 5*time.Second, cfg.Session.IdleTTL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEngineOptions_Unsupported(t *testing.T) {
	_, err := EngineConfig{Mode: "gen3"}.Options()
	assert.ErrorIs(t, err, battle.ErrUnsupportedMode)
	_, err = EngineConfig{Generation: 2}.Options()
	assert.ErrorIs(t, err, battle.ErrUnsupportedMode)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 100, cfg.Runner.Battles)
	assert.True(t, cfg.Runner.Verify)
	assert.Equal(t, 64, cfg.Session.EventTail)
	opts, err := cfg.Engine.Options()
	require.NoError(t, err)
	assert.Equal(t, battle.Compat, opts.Mode)
}

func TestLoadTeams(t *testing.T) {
	tf, err := LoadTeams(writeFile(t, "teams.yaml", `
teams:
  - name: normal
    members:
      - species: Tauros
        moves: [Body Slam, Hyper Beam, Blizzard, Earthquake]
      - species: Chansey
        level: 90
        moves: [Soft-Boiled, Thunder Wave, Ice Beam, Seismic Toss]
        dvs: {atk: 14, def: 15, spe: 15, spc: 15}
  - members:
      - species: Alakazam
        moves: [Psychic, Recover]
`))
	require.NoError(t, err)
	require.Len(t, tf.Teams, 2)
	assert.Equal(t, "normal", tf.Teams[0].Name)
	assert.Equal(t, "team2", tf.Teams[1].Name)

	team := tf.Teams[0].Team()
	require.Len(t, team, 2)
	assert.Equal(t, "Tauros", team[0].Species)
	assert.Equal(t, uint8(90), team[1].Level)
	require.NotNil(t, team[1].DVs)
	assert.Equal(t, uint8(14), team[1].DVs.Atk)
	assert.Nil(t, team[0].DVs)

	_, err = battle.New(tf.Teams[0].Team(), tf.Teams[1].Team(), [4]uint16{1, 2, 3, 4}, battle.Options{})
	assert.NoError(t, err)
}

func TestLoadTeams_TooFew(t *testing.T) {
	_, err := LoadTeams(writeFile(t, "teams.yaml", "teams:\n  - members:\n      - species: Mew\n        moves: [Psychic]\n"))
	assert.ErrorIs(t, err, ErrNoTeams)
}
