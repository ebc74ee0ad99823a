package hook

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/kasuganosora/pkmnsim/game/battle"
)

// ErrInterrupt signals that a Hook handler wants to stop further processing.
// Returned from BeforeStep it rejects the step; from BeforeArchive it skips
// archiving.
var ErrInterrupt = errors.New("hook interrupted")

// HookFn is a hook handler function.
// Returns (modified data, nil) to continue, or (data, ErrInterrupt) to stop.
type HookFn func(ctx context.Context, event string, data interface{}) (interface{}, error)

type hookEntry struct {
	priority int
	fn       HookFn
	name     string
}

// HookCenter manages event hook registrations.
type HookCenter struct {
	mu    sync.RWMutex
	hooks map[string][]*hookEntry
}

// NewHookCenter creates a new HookCenter.
func NewHookCenter() *HookCenter {
	return &HookCenter{hooks: make(map[string][]*hookEntry)}
}

// Register adds a HookFn for the given event with the given priority (lower
// runs first; equal priorities run in registration order). name is used for
// Unregister.
func (hc *HookCenter) Register(event string, priority int, name string, fn HookFn) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	entries := append(hc.hooks[event], &hookEntry{priority: priority, fn: fn, name: name})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].priority < entries[j].priority
	})
	hc.hooks[event] = entries
}

// Unregister removes all hooks with the given name for the given event.
func (hc *HookCenter) Unregister(event, name string) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.hooks[event] = without(hc.hooks[event], name)
}

// UnregisterAll removes all hooks registered with the given name across all events.
func (hc *HookCenter) UnregisterAll(name string) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	for event, entries := range hc.hooks {
		hc.hooks[event] = without(entries, name)
	}
}

func without(entries []*hookEntry, name string) []*hookEntry {
	out := entries[:0:0]
	for _, e := range entries {
		if e.name != name {
			out = append(out, e)
		}
	}
	return out
}

// Has reports whether any handler listens for event.
func (hc *HookCenter) Has(event string) bool {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return len(hc.hooks[event]) > 0
}

// Trigger executes all registered hooks for event in priority order.
// Data flows through each handler, allowing modification.
// If any handler returns ErrInterrupt, execution stops. Other errors are
// ignored and the chain continues.
func (hc *HookCenter) Trigger(ctx context.Context, event string, data interface{}) (interface{}, error) {
	hc.mu.RLock()
	entries := make([]*hookEntry, len(hc.hooks[event]))
	copy(entries, hc.hooks[event])
	hc.mu.RUnlock()

	var err error
	for _, e := range entries {
		data, err = e.fn(ctx, event, data)
		if errors.Is(err, ErrInterrupt) {
			return data, err
		}
	}
	return data, nil
}

// ---- Hook event names ----

const (
	// OnBattleStart carries the battle id as a string.
	OnBattleStart = "on_battle_start"
	// BeforeStep carries a *StepPayload before the choices reach the engine.
	BeforeStep = "before_step"
	// AfterStep carries a *StepPayload with the step's result filled in.
	AfterStep = "after_step"
	// OnBattleEvent carries an EventPayload for every engine log entry.
	OnBattleEvent = "on_battle_event"
	// OnBattleEnd carries a *StepPayload for the step that ended the battle.
	OnBattleEnd = "on_battle_end"
	// BeforeArchive carries the battle id before a finished battle is queued
	// for the replay archive.
	BeforeArchive = "before_archive"
	// OnSessionExpired carries the id of a session dropped for idleness.
	OnSessionExpired = "on_session_expired"
)

// StepPayload describes one step of a battle.
type StepPayload struct {
	BattleID string
	Step     int
	P1, P2   battle.Choice
	Result   battle.Result
}

// EventPayload is one engine event of a battle.
type EventPayload struct {
	BattleID string
	Event    battle.Event
}

// Sink forwards engine events to OnBattleEvent handlers. Handlers can't
// interrupt the engine; their errors are dropped.
type Sink struct {
	Center   *HookCenter
	Ctx      context.Context
	BattleID string
}

func (s Sink) Emit(e battle.Event) {
	_, _ = s.Center.Trigger(s.Ctx, OnBattleEvent, EventPayload{BattleID: s.BattleID, Event: e})
}
