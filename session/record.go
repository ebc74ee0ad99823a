package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kasuganosora/pkmnsim/cache"
	"github.com/kasuganosora/pkmnsim/game/battle"
	"github.com/kasuganosora/pkmnsim/replay"
)

const keyPrefix = "pkmnsim:"

const (
	indexKey    = keyPrefix + "sessions"          // set of live ids
	activityKey = keyPrefix + "sessions:activity" // zset id → last step, unix seconds
	tallyKey    = keyPrefix + "tally"             // hash outcome → count
)

func recordKey(id string) string { return keyPrefix + "session:" + id }
func eventsKey(id string) string { return keyPrefix + "session:" + id + ":events" }

// Channel is the pub/sub channel a session's step notices go to.
func Channel(id string) string { return keyPrefix + "battle:" + id }

// Record is the cached, replayable state of a session. The battle itself is
// rebuilt from Log when a process that doesn't hold it is asked to step.
type Record struct {
	Log     *replay.Log `json:"log"`
	Created time.Time   `json:"created"`
	Updated time.Time   `json:"updated"`
}

// ID returns the session id.
func (r *Record) ID() string { return r.Log.BattleID }

// Steps is the number of accepted steps.
func (r *Record) Steps() int { return len(r.Log.Choices) }

// Result is the result of the last accepted step.
func (r *Record) Result() battle.Result { return r.Log.Outcome() }

// Notice is published on Channel(id) after every accepted step.
type Notice struct {
	BattleID string `json:"battle_id"`
	Step     int    `json:"step"`
	Turn     uint16 `json:"turn"`
	Result   uint8  `json:"result"`
	Events   int    `json:"events"`
}

// eventLine is how one engine event is kept in the session's event list.
type eventLine struct {
	Type string       `json:"type"`
	Data battle.Event `json:"data"`
}

func (m *Manager) saveRecord(ctx context.Context, rec *Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := m.cache.Set(ctx, recordKey(rec.ID()), string(raw), m.cfg.IdleTTL); err != nil {
		return err
	}
	return m.cache.ZAdd(ctx, activityKey, float64(rec.Updated.Unix()), rec.ID())
}

func (m *Manager) loadRecord(ctx context.Context, id string) (*Record, error) {
	raw, err := m.cache.Get(ctx, recordKey(id))
	if cache.IsNotFound(err) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	rec := &Record{}
	if err := json.Unmarshal([]byte(raw), rec); err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	if rec.Log == nil {
		return nil, fmt.Errorf("%s: record has no log: %w", id, ErrNotFound)
	}
	return rec, nil
}

// appendEvents pushes the step's events onto the session's capped event
// list, newest first.
func (m *Manager) appendEvents(ctx context.Context, id string, events []battle.Event) error {
	if len(events) == 0 || m.cfg.EventTail <= 0 {
		return nil
	}
	lines := make([]string, 0, len(events))
	for _, e := range events {
		raw, err := json.Marshal(eventLine{Type: e.EventType(), Data: e})
		if err != nil {
			return err
		}
		lines = append(lines, string(raw))
	}
	key := eventsKey(id)
	if err := m.cache.LPush(ctx, key, lines...); err != nil {
		return err
	}
	if err := m.cache.LTrim(ctx, key, 0, int64(m.cfg.EventTail-1)); err != nil {
		return err
	}
	return m.cache.Expire(ctx, key, m.cfg.IdleTTL)
}
