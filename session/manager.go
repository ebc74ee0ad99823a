package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kasuganosora/pkmnsim/cache"
	"github.com/kasuganosora/pkmnsim/game/battle"
	"github.com/kasuganosora/pkmnsim/plugin/hook"
	"github.com/kasuganosora/pkmnsim/replay"
	"github.com/kasuganosora/pkmnsim/scheduler"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned for unknown or expired sessions.
	ErrNotFound = errors.New("session not found")
	// ErrEnded is returned when stepping a battle that is already over.
	ErrEnded = errors.New("battle already ended")
	// ErrRejected is returned when a BeforeStep hook interrupts a step.
	ErrRejected = errors.New("step rejected")
)

const sweepTask = "session-sweep"

// Config tunes a Manager.
type Config struct {
	IdleTTL       time.Duration // cached records expire after this long without a step
	SweepInterval time.Duration // 0 disables the sweeper
	RetireAfter   time.Duration // finished sessions stay readable this long
	EventTail     int           // events kept per session; 0 keeps none
	Logger        *zap.Logger
}

func (c *Config) normalize() {
	if c.IdleTTL <= 0 {
		c.IdleTTL = 30 * time.Minute
	}
	if c.RetireAfter <= 0 || c.RetireAfter > c.IdleTTL {
		c.RetireAfter = c.IdleTTL
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// Deps are the services a Manager works with. Only Cache is required.
type Deps struct {
	Cache     cache.Cache
	PubSub    cache.PubSub
	Hooks     *hook.HookCenter
	Archive   *replay.Service
	Scheduler *scheduler.Scheduler
}

// live is a battle held in this process.
type live struct {
	mu     sync.Mutex
	b      *battle.Battle
	rec    *Record
	events *battle.SliceSink
}

// Manager runs battle sessions. Battles are kept in memory and mirrored to
// the cache as replayable records, so any process sharing the cache can
// pick a session up.
type Manager struct {
	deps   Deps
	cache  cache.Cache
	hooks  *hook.HookCenter
	cfg    Config
	logger *zap.Logger
	now    func() time.Time

	mu   sync.RWMutex
	live map[string]*live // id → battle
}

// NewManager creates a Manager.
func NewManager(deps Deps, cfg Config) *Manager {
	cfg.normalize()
	hooks := deps.Hooks
	if hooks == nil {
		hooks = hook.NewHookCenter()
	}
	return &Manager{
		deps:   deps,
		cache:  deps.Cache,
		hooks:  hooks,
		cfg:    cfg,
		logger: cfg.Logger,
		now:    time.Now,
		live:   make(map[string]*live),
	}
}

// Hooks returns the hook center the manager triggers.
func (m *Manager) Hooks() *hook.HookCenter { return m.hooks }

// Start registers the idle sweeper with the scheduler.
func (m *Manager) Start() {
	if m.deps.Scheduler == nil || m.cfg.SweepInterval <= 0 {
		return
	}
	m.deps.Scheduler.AddTicker(sweepTask, m.cfg.SweepInterval, func(ctx context.Context) {
		if n, err := m.Sweep(ctx); err != nil {
			m.logger.Warn("session sweep failed", zap.Error(err))
		} else if n > 0 {
			m.logger.Info("idle sessions swept", zap.Int("count", n))
		}
	})
}

// Stop unregisters the sweeper.
func (m *Manager) Stop() {
	if m.deps.Scheduler != nil {
		m.deps.Scheduler.Remove(sweepTask)
	}
}

// Create starts a session for two teams. The returned battle is waiting for
// its first (pass, pass) step.
func (m *Manager) Create(ctx context.Context, p1, p2 battle.Team, seed [4]uint16, opts battle.Options) (string, error) {
	id := uuid.NewString()
	l := &live{events: &battle.SliceSink{}}
	logOpts := opts
	opts.Sink = m.sink(ctx, id, l.events, opts.Sink)
	b, err := battle.New(p1, p2, seed, opts)
	if err != nil {
		return "", err
	}
	now := m.now()
	l.b = b
	l.rec = &Record{Log: replay.NewLog(id, p1, p2, seed, logOpts), Created: now, Updated: now}

	raw, err := json.Marshal(l.rec)
	if err != nil {
		return "", err
	}
	ok, err := m.cache.SetNX(ctx, recordKey(id), string(raw), m.cfg.IdleTTL)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("session %s already exists", id)
	}
	if err := m.cache.SAdd(ctx, indexKey, id); err != nil {
		return "", err
	}
	if err := m.cache.ZAdd(ctx, activityKey, float64(now.Unix()), id); err != nil {
		return "", err
	}

	m.mu.Lock()
	m.live[id] = l
	m.mu.Unlock()

	_, _ = m.hooks.Trigger(ctx, hook.OnBattleStart, id)
	m.logger.Info("battle session created", zap.String("id", id), zap.String("mode", opts.Mode.String()))
	return id, nil
}

// sink collects events for the event list and forwards them to hooks and
// to any caller-supplied sink.
func (m *Manager) sink(ctx context.Context, id string, events *battle.SliceSink, extra battle.Sink) battle.Sink {
	sinks := battle.MultiSink{events}
	if m.hooks.Has(hook.OnBattleEvent) {
		sinks = append(sinks, hook.Sink{Center: m.hooks, Ctx: context.WithoutCancel(ctx), BattleID: id})
	}
	if extra != nil {
		sinks = append(sinks, extra)
	}
	return sinks
}

// acquire returns the in-process battle for id, rebuilding it from the
// cached record if another process created it or this one restarted.
func (m *Manager) acquire(ctx context.Context, id string) (*live, error) {
	m.mu.RLock()
	l, ok := m.live[id]
	m.mu.RUnlock()
	if ok {
		return l, nil
	}

	rec, err := m.loadRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	b, _, err := rec.Log.Run(nil)
	if err != nil {
		return nil, fmt.Errorf("%s: rebuild: %w", id, err)
	}
	l = &live{b: b, rec: rec, events: &battle.SliceSink{}}
	b.SetSink(m.sink(ctx, id, l.events, nil))

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.live[id]; ok {
		return existing, nil
	}
	m.live[id] = l
	m.logger.Debug("battle session rebuilt", zap.String("id", id), zap.Int("steps", rec.Steps()))
	return l, nil
}

// Step feeds both players' choices to a session's battle. Invalid choices
// are rejected without changing anything.
func (m *Manager) Step(ctx context.Context, id string, c1, c2 battle.Choice) (battle.Result, error) {
	l, err := m.acquire(ctx, id)
	if err != nil {
		return battle.Result{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.b.Result().Ended() {
		return l.b.Result(), fmt.Errorf("%s: %w", id, ErrEnded)
	}
	payload := &hook.StepPayload{BattleID: id, Step: l.rec.Steps(), P1: c1, P2: c2}
	if _, err := m.hooks.Trigger(ctx, hook.BeforeStep, payload); errors.Is(err, hook.ErrInterrupt) {
		return l.b.Result(), fmt.Errorf("%s: %w", id, ErrRejected)
	}
	c1, c2 = payload.P1, payload.P2

	l.events.Reset()
	res, err := l.b.Update(c1, c2)
	if err != nil && !errors.Is(err, battle.ErrDesyncDetected) {
		return res, err
	}
	if err != nil {
		m.logger.Error("battle desync", zap.String("id", id), zap.Error(err))
	}

	l.rec.Log.Record(c1, c2, res, l.b.Turn())
	l.rec.Updated = m.now()
	if serr := m.persist(ctx, l); serr != nil {
		m.logger.Warn("session store failed", zap.String("id", id), zap.Error(serr))
	}

	payload.Result = res
	_, _ = m.hooks.Trigger(ctx, hook.AfterStep, payload)
	if res.Ended() {
		m.finish(ctx, l, payload)
	}
	return res, err
}

func (m *Manager) persist(ctx context.Context, l *live) error {
	id := l.rec.ID()
	if err := m.saveRecord(ctx, l.rec); err != nil {
		return err
	}
	if err := m.appendEvents(ctx, id, l.events.Events); err != nil {
		return err
	}
	if m.deps.PubSub == nil {
		return nil
	}
	raw, err := json.Marshal(Notice{
		BattleID: id,
		Step:     l.rec.Steps(),
		Turn:     l.rec.Log.Turns,
		Result:   l.rec.Log.Result,
		Events:   len(l.events.Events),
	})
	if err != nil {
		return err
	}
	return m.deps.PubSub.Publish(ctx, Channel(id), string(raw))
}

// finish tallies, archives and schedules retirement of an ended battle.
func (m *Manager) finish(ctx context.Context, l *live, payload *hook.StepPayload) {
	id := l.rec.ID()
	res := payload.Result
	_, _ = m.hooks.Trigger(ctx, hook.OnBattleEnd, payload)
	if _, err := m.cache.HIncrBy(ctx, tallyKey, res.Kind.String(), 1); err != nil {
		m.logger.Warn("tally update failed", zap.String("id", id), zap.Error(err))
	}
	m.logger.Info("battle finished",
		zap.String("id", id),
		zap.String("result", res.Kind.String()),
		zap.Uint16("turns", l.b.Turn()),
		zap.Int("steps", l.rec.Steps()))

	if m.deps.Archive != nil {
		if _, err := m.hooks.Trigger(ctx, hook.BeforeArchive, id); errors.Is(err, hook.ErrInterrupt) {
			m.logger.Debug("archive skipped by hook", zap.String("id", id))
		} else {
			m.deps.Archive.Archive(l.rec.Log)
		}
	}

	m.mu.Lock()
	delete(m.live, id)
	m.mu.Unlock()
	if m.deps.Scheduler != nil {
		m.deps.Scheduler.AddDelay("retire:"+id, m.cfg.RetireAfter, func(ctx context.Context) {
			if err := m.drop(ctx, id); err != nil {
				m.logger.Warn("session retire failed", zap.String("id", id), zap.Error(err))
			}
		})
	}
}

// Get returns the session's record.
func (m *Manager) Get(ctx context.Context, id string) (*Record, error) {
	m.mu.RLock()
	l, ok := m.live[id]
	m.mu.RUnlock()
	if ok {
		l.mu.Lock()
		defer l.mu.Unlock()
		rec := *l.rec
		log := *rec.Log
		log.Choices = append([][2]uint8(nil), rec.Log.Choices...)
		rec.Log = &log
		return &rec, nil
	}
	return m.loadRecord(ctx, id)
}

// Request returns what player p is asked for next.
func (m *Manager) Request(ctx context.Context, id string, p battle.Player) (battle.Request, error) {
	l, err := m.acquire(ctx, id)
	if err != nil {
		return battle.Request{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Side(p).Request, nil
}

// Choices lists player p's legal choices for the next step.
func (m *Manager) Choices(ctx context.Context, id string, p battle.Player) ([]battle.Choice, error) {
	l, err := m.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.b.Result().Ended() && l.rec.Steps() == 0 {
		return []battle.Choice{battle.Pass()}, nil
	}
	return l.b.Choices(p), nil
}

// Play drives a session to the end with two choosers and returns the final
// result.
func (m *Manager) Play(ctx context.Context, id string, p1, p2 battle.Chooser, maxSteps int) (battle.Result, error) {
	l, err := m.acquire(ctx, id)
	if err != nil {
		return battle.Result{}, err
	}
	var res battle.Result
	for i := 0; i < maxSteps; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		l.mu.Lock()
		b, started := l.b, l.rec.Steps() > 0
		var c1, c2 battle.Choice
		if started {
			c1, c2 = p1.Choose(b, battle.P1), p2.Choose(b, battle.P2)
		}
		l.mu.Unlock()
		if res, err = m.Step(ctx, id, c1, c2); err != nil || res.Ended() {
			return res, err
		}
	}
	return res, nil
}

// Events returns up to n of the session's most recent events, oldest first,
// as JSON lines.
func (m *Manager) Events(ctx context.Context, id string, n int) ([]string, error) {
	lines, err := m.cache.LRange(ctx, eventsKey(id), 0, int64(n-1))
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, nil
}

// Watch subscribes to a session's step notices.
func (m *Manager) Watch(ctx context.Context, id string) (<-chan *cache.Message, func(), error) {
	if m.deps.PubSub == nil {
		return nil, nil, errors.New("session: no pubsub configured")
	}
	return m.deps.PubSub.Subscribe(ctx, Channel(id))
}

// Active returns the ids of all known sessions, sorted.
func (m *Manager) Active(ctx context.Context) ([]string, error) {
	ids, err := m.cache.SMembers(ctx, indexKey)
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

// Recent returns the ids of the n most recently stepped sessions.
func (m *Manager) Recent(ctx context.Context, n int) ([]string, error) {
	return m.cache.ZRevRange(ctx, activityKey, 0, int64(n-1))
}

// Tally counts finished battles by result kind.
func (m *Manager) Tally(ctx context.Context) (map[string]int64, error) {
	raw, err := m.cache.HGetAll(ctx, tallyKey)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(raw))
	for k, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("tally %s: %w", k, err)
		}
		out[k] = n
	}
	return out, nil
}

// Close drops a session without archiving it.
func (m *Manager) Close(ctx context.Context, id string) error {
	if _, err := m.Get(ctx, id); err != nil {
		return err
	}
	return m.drop(ctx, id)
}

func (m *Manager) drop(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.live, id)
	m.mu.Unlock()
	if err := m.cache.Del(ctx, recordKey(id), eventsKey(id)); err != nil {
		return err
	}
	if err := m.cache.SRem(ctx, indexKey, id); err != nil {
		return err
	}
	return m.cache.ZRem(ctx, activityKey, id)
}

// Sweep drops sessions that have not been stepped within IdleTTL and
// returns how many it dropped.
func (m *Manager) Sweep(ctx context.Context) (int, error) {
	ids, err := m.cache.SMembers(ctx, indexKey)
	if err != nil {
		return 0, err
	}
	cutoff := m.now().Add(-m.cfg.IdleTTL)
	n := 0
	for _, id := range ids {
		last, err := m.cache.ZScore(ctx, activityKey, id)
		if err != nil && !cache.IsNotFound(err) {
			return n, err
		}
		if err == nil && !time.Unix(int64(last), 0).Before(cutoff) {
			continue
		}
		if err := m.drop(ctx, id); err != nil {
			return n, err
		}
		n++
		_, _ = m.hooks.Trigger(ctx, hook.OnSessionExpired, id)
		m.logger.Debug("idle session expired", zap.String("id", id))
	}
	return n, nil
}
