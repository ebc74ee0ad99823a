package replay

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kasuganosora/pkmnsim/game/battle"
	"github.com/kasuganosora/pkmnsim/model"
	"gorm.io/datatypes"
)

// ErrMismatch is returned when replaying a log does not reproduce the
// result it recorded.
var ErrMismatch = errors.New("replay does not match recorded result")

// Settings is the persisted part of battle.Options.
type Settings struct {
	Mode                string `json:"mode"`
	Generation          int    `json:"generation,omitempty"`
	TurnLimit           int    `json:"turn_limit,omitempty"`
	SleepClause         bool   `json:"sleep_clause,omitempty"`
	FreezeClause        bool   `json:"freeze_clause,omitempty"`
	EndlessBattleClause bool   `json:"endless_battle_clause,omitempty"`
}

// SettingsFrom captures the rules of o.
func SettingsFrom(o battle.Options) Settings {
	return Settings{
		Mode:                o.Mode.String(),
		Generation:          o.Generation,
		TurnLimit:           o.TurnLimit,
		SleepClause:         o.SleepClause,
		FreezeClause:        o.FreezeClause,
		EndlessBattleClause: o.EndlessBattleClause,
	}
}

// Options rebuilds battle options with no sink or logger attached.
func (s Settings) Options() (battle.Options, error) {
	mode, err := battle.ParseMode(s.Mode)
	if err != nil {
		return battle.Options{}, err
	}
	return battle.Options{
		Mode:                mode,
		Generation:          s.Generation,
		TurnLimit:           s.TurnLimit,
		SleepClause:         s.SleepClause,
		FreezeClause:        s.FreezeClause,
		EndlessBattleClause: s.EndlessBattleClause,
	}, nil
}

// Log is everything needed to run a battle again from nothing: the seed,
// the rules, both teams and every step's pair of encoded choices.
type Log struct {
	BattleID string         `json:"battle_id"`
	Seed     [4]uint16      `json:"seed"`
	Settings Settings       `json:"settings"`
	Teams    [2]battle.Team `json:"teams"`
	Choices  [][2]uint8     `json:"choices"`
	Result   uint8          `json:"result"`
	Turns    uint16         `json:"turns"`
}

// NewLog starts a log for a battle that has not been stepped yet.
func NewLog(id string, p1, p2 battle.Team, seed [4]uint16, opts battle.Options) *Log {
	return &Log{
		BattleID: id,
		Seed:     seed,
		Settings: SettingsFrom(opts),
		Teams:    [2]battle.Team{p1, p2},
		Result:   battle.Result{}.Encode(),
	}
}

// Record appends an accepted step and the state it produced.
func (l *Log) Record(c1, c2 battle.Choice, res battle.Result, turn uint16) {
	l.Choices = append(l.Choices, [2]uint8{c1.Encode(), c2.Encode()})
	l.Result = res.Encode()
	l.Turns = turn
}

// Outcome decodes the last recorded result.
func (l *Log) Outcome() battle.Result {
	r, _ := battle.DecodeResult(l.Result)
	return r
}

// New builds a fresh battle from the log's teams, seed and rules. sink may
// be nil.
func (l *Log) New(sink battle.Sink) (*battle.Battle, error) {
	opts, err := l.Settings.Options()
	if err != nil {
		return nil, err
	}
	opts.Sink = sink
	return battle.New(l.Teams[0], l.Teams[1], l.Seed, opts)
}

// Run replays every recorded step on a fresh battle and returns it with the
// final result. A desync on the last step is returned as the engine
// reported it.
func (l *Log) Run(sink battle.Sink) (*battle.Battle, battle.Result, error) {
	b, err := l.New(sink)
	if err != nil {
		return nil, battle.Result{}, err
	}
	res := b.Result()
	for i, pair := range l.Choices {
		c1, err := battle.DecodeChoice(pair[0])
		if err != nil {
			return b, res, fmt.Errorf("step %d: %w", i, err)
		}
		c2, err := battle.DecodeChoice(pair[1])
		if err != nil {
			return b, res, fmt.Errorf("step %d: %w", i, err)
		}
		if res, err = b.Update(c1, c2); err != nil {
			return b, res, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return b, res, nil
}

// Verify replays the log and checks it lands on the recorded result and
// turn.
func (l *Log) Verify() error {
	b, res, err := l.Run(nil)
	want := l.Outcome()
	if err != nil {
		if errors.Is(err, battle.ErrDesyncDetected) && want.Kind == battle.ResultError {
			return nil
		}
		if errors.Is(err, battle.ErrInvalidChoice) {
			return fmt.Errorf("%s: %w: %v", l.BattleID, ErrMismatch, err)
		}
		return err
	}
	if res != want || b.Turn() != l.Turns {
		return fmt.Errorf("%s: %w: got %s at turn %d, recorded %s at turn %d",
			l.BattleID, ErrMismatch, res, b.Turn(), want, l.Turns)
	}
	return nil
}

// ToRecord converts a finished log to its archive row.
func (l *Log) ToRecord() (*model.BattleRecord, error) {
	seed, err := json.Marshal(l.Seed)
	if err != nil {
		return nil, err
	}
	settings, err := json.Marshal(l.Settings)
	if err != nil {
		return nil, err
	}
	team1, err := json.Marshal(l.Teams[0])
	if err != nil {
		return nil, err
	}
	team2, err := json.Marshal(l.Teams[1])
	if err != nil {
		return nil, err
	}
	choices := l.Choices
	if choices == nil {
		choices = [][2]uint8{}
	}
	steps, err := json.Marshal(choices)
	if err != nil {
		return nil, err
	}
	return &model.BattleRecord{
		BattleID: l.BattleID,
		Mode:     l.Settings.Mode,
		Seed:     datatypes.JSON(seed),
		Settings: datatypes.JSON(settings),
		Team1:    datatypes.JSON(team1),
		Team2:    datatypes.JSON(team2),
		Choices:  datatypes.JSON(steps),
		Steps:    len(l.Choices),
		Turns:    int(l.Turns),
		Result:   l.Result,
		Outcome:  l.Outcome().Kind.String(),
	}, nil
}

// FromRecord rebuilds a log from an archive row.
func FromRecord(rec *model.BattleRecord) (*Log, error) {
	l := &Log{BattleID: rec.BattleID, Result: rec.Result, Turns: uint16(rec.Turns)}
	for _, f := range []struct {
		name string
		raw  datatypes.JSON
		dst  interface{}
	}{
		{"seed", rec.Seed, &l.Seed},
		{"settings", rec.Settings, &l.Settings},
		{"team1", rec.Team1, &l.Teams[0]},
		{"team2", rec.Team2, &l.Teams[1]},
		{"choices", rec.Choices, &l.Choices},
	} {
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", rec.BattleID, f.name, err)
		}
	}
	return l, nil
}
