package battle

import (
	"github.com/kasuganosora/pkmnsim/game/data"
	"go.uber.org/zap"
)

// Event is one entry of the battle log. Events are a projection of state
// changes; the engine never reads them back.
type Event interface {
	EventType() string
}

// Sink receives events as they happen. It is owned by the caller.
type Sink interface {
	Emit(e Event)
}

// SliceSink collects events in memory.
type SliceSink struct {
	Events []Event
}

func (s *SliceSink) Emit(e Event) { s.Events = append(s.Events, e) }

// Reset drops collected events.
func (s *SliceSink) Reset() { s.Events = s.Events[:0] }

// Types returns the type of every collected event in order.
func (s *SliceSink) Types() []string {
	out := make([]string, len(s.Events))
	for i, e := range s.Events {
		out[i] = e.EventType()
	}
	return out
}

// ZapSink writes every event as a debug line.
type ZapSink struct {
	Logger *zap.Logger
}

func (s ZapSink) Emit(e Event) {
	s.Logger.Debug("battle event", zap.String("event", e.EventType()), zap.Any("data", e))
}

// MultiSink fans events out to several sinks.
type MultiSink []Sink

func (m MultiSink) Emit(e Event) {
	for _, s := range m {
		s.Emit(e)
	}
}

// --- Concrete event types ---

type EventSwitch struct {
	Player  Player         `json:"player"`
	Species data.SpeciesID `json:"species"`
	Level   uint8          `json:"level"`
	HP      uint16         `json:"hp"`
	MaxHP   uint16         `json:"max_hp"`
}

func (EventSwitch) EventType() string { return "switch" }

type EventMove struct {
	Player Player      `json:"player"`
	Move   data.MoveID `json:"move"`
	Target Player      `json:"target"`
	From   string      `json:"from,omitempty"`
}

func (EventMove) EventType() string { return "move" }

type EventDamage struct {
	Player Player `json:"player"`
	HP     uint16 `json:"hp"`
	MaxHP  uint16 `json:"max_hp"`
	From   string `json:"from,omitempty"`
}

func (EventDamage) EventType() string { return "damage" }

type EventHeal struct {
	Player Player `json:"player"`
	HP     uint16 `json:"hp"`
	MaxHP  uint16 `json:"max_hp"`
	From   string `json:"from,omitempty"`
}

func (EventHeal) EventType() string { return "heal" }

type EventStatus struct {
	Player Player `json:"player"`
	Status Status `json:"status"`
	From   string `json:"from,omitempty"`
}

func (EventStatus) EventType() string { return "status" }

type EventCureStatus struct {
	Player Player `json:"player"`
	Status Status `json:"status"`
	Msg    bool   `json:"msg,omitempty"`
}

func (EventCureStatus) EventType() string { return "curestatus" }

type EventFaint struct {
	Player Player `json:"player"`
}

func (EventFaint) EventType() string { return "faint" }

type EventTurn struct {
	Turn uint16 `json:"turn"`
}

func (EventTurn) EventType() string { return "turn" }

type EventWin struct {
	Player Player `json:"player"`
}

func (EventWin) EventType() string { return "win" }

type EventTie struct{}

func (EventTie) EventType() string { return "tie" }

type EventMiss struct {
	Player Player `json:"player"`
	Target Player `json:"target"`
}

func (EventMiss) EventType() string { return "miss" }

type EventCrit struct {
	Player Player `json:"player"`
}

func (EventCrit) EventType() string { return "crit" }

type EventSuperEffective struct {
	Player Player `json:"player"`
}

func (EventSuperEffective) EventType() string { return "supereffective" }

type EventResisted struct {
	Player Player `json:"player"`
}

func (EventResisted) EventType() string { return "resisted" }

type EventImmune struct {
	Player Player `json:"player"`
}

func (EventImmune) EventType() string { return "immune" }

type EventCant struct {
	Player Player      `json:"player"`
	Reason string      `json:"reason"`
	Move   data.MoveID `json:"move,omitempty"`
}

func (EventCant) EventType() string { return "cant" }

type EventFail struct {
	Player Player `json:"player"`
	Reason string `json:"reason,omitempty"`
}

func (EventFail) EventType() string { return "fail" }

type EventStart struct {
	Player    Player      `json:"player"`
	Condition string      `json:"condition"`
	Move      data.MoveID `json:"move,omitempty"`
	Fatigue   bool        `json:"fatigue,omitempty"`
}

func (EventStart) EventType() string { return "start" }

type EventEnd struct {
	Player    Player      `json:"player"`
	Condition string      `json:"condition"`
	Move      data.MoveID `json:"move,omitempty"`
}

func (EventEnd) EventType() string { return "end" }

type EventActivate struct {
	Player    Player      `json:"player"`
	Condition string      `json:"condition"`
	Move      data.MoveID `json:"move,omitempty"`
}

func (EventActivate) EventType() string { return "activate" }

type EventSideStart struct {
	Player    Player `json:"player"`
	Condition string `json:"condition"`
}

func (EventSideStart) EventType() string { return "sidestart" }

type EventSideEnd struct {
	Player    Player `json:"player"`
	Condition string `json:"condition"`
}

func (EventSideEnd) EventType() string { return "sideend" }

type EventBoost struct {
	Player Player    `json:"player"`
	Stat   data.Stat `json:"stat"`
	Stages int8      `json:"stages"`
}

func (EventBoost) EventType() string { return "boost" }

type EventUnboost struct {
	Player Player    `json:"player"`
	Stat   data.Stat `json:"stat"`
	Stages int8      `json:"stages"`
}

func (EventUnboost) EventType() string { return "unboost" }

type EventPrepare struct {
	Player Player      `json:"player"`
	Move   data.MoveID `json:"move"`
}

func (EventPrepare) EventType() string { return "prepare" }

type EventMustRecharge struct {
	Player Player `json:"player"`
}

func (EventMustRecharge) EventType() string { return "mustrecharge" }

type EventHitCount struct {
	Player Player `json:"player"`
	Hits   uint8  `json:"hits"`
}

func (EventHitCount) EventType() string { return "hitcount" }

type EventOHKO struct {
	Player Player `json:"player"`
}

func (EventOHKO) EventType() string { return "ohko" }

type EventTransform struct {
	Player  Player         `json:"player"`
	Target  Player         `json:"target"`
	Species data.SpeciesID `json:"species"`
}

func (EventTransform) EventType() string { return "transform" }

type EventMimic struct {
	Player Player      `json:"player"`
	Move   data.MoveID `json:"move"`
}

func (EventMimic) EventType() string { return "mimic" }

type EventTypeChange struct {
	Player Player     `json:"player"`
	Types  data.Types `json:"types"`
}

func (EventTypeChange) EventType() string { return "typechange" }

type EventClearAll struct{}

func (EventClearAll) EventType() string { return "clearallboost" }
