// Package engine is the state-update core of the atelier simulation: the
// action dispatcher, the daily rollover state machine, the weighted daily
// events, and the palette minigame. It owns the GameState for the lifetime of
// a session and is the only place that mutates it. Persistence and display
// are collaborators injected at the edges; the engine never touches them.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/atelierlabs/atelier/internal/config"
	"github.com/atelierlabs/atelier/internal/rng"
	"github.com/atelierlabs/atelier/internal/state"
)

// Engine drives one game session. It is not safe for concurrent use; the
// surrounding server serializes access.
type Engine struct {
	cfg   config.Balance
	now   func() time.Time
	state *state.State
	rand  *rng.Source
	game  *paletteSession
}

// Choice is one selectable option the display sink should offer.
type Choice struct {
	Label  string         `json:"label"`
	Action string         `json:"action"`
	Params map[string]any `json:"params,omitempty"`
}

// Result is the outcome of one engine operation: a display message and the
// choices now available.
type Result struct {
	Message string   `json:"message"`
	Choices []Choice `json:"choices"`
}

// New creates an engine with a fresh first-day state and runs the opening
// rollover.
func New(cfg config.Balance, now func() time.Time) *Engine {
	e := &Engine{cfg: cfg, now: now}
	e.freshState()
	e.rollover()
	return e
}

// Load restores an engine from a persisted snapshot. The generator is seeded
// for the snapshot's current day; callers decide when to SyncDay.
func Load(cfg config.Balance, now func() time.Time, snapshot []byte) (*Engine, error) {
	st, err := state.Decode(snapshot, now())
	if err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, now: now, state: st}
	e.rand = rng.NewForDay(now(), st.Day)
	return e, nil
}

func (e *Engine) freshState() {
	st := state.New(e.now())
	st.ActionPoints = e.cfg.StartActionPoints
	st.MaxActionPoints = e.cfg.StartActionPoints
	st.MaxMuses = e.cfg.MaxMuses
	e.state = st
	e.rand = rng.NewForDay(e.now(), st.Day)
	e.game = nil
}

// Reset discards the session and starts over from day one.
func (e *Engine) Reset() Result {
	e.freshState()
	res := e.rollover()
	res.Message = "The atelier stands empty, ready for a new beginning. " + res.Message
	return res
}

// State exposes the aggregate for read-only views. Callers must not mutate.
func (e *Engine) State() *state.State { return e.state }

// Snapshot serializes the current state for persistence.
func (e *Engine) Snapshot() ([]byte, error) { return e.state.Encode() }

// Terminal reports whether the session has reached an absorbing scenario.
func (e *Engine) Terminal() bool {
	return strings.HasPrefix(e.state.ScenarioID, "game_over")
}

// Dispatch validates and applies one player action. The sequence is fixed:
// terminal check, daily-limit guard (rejected for free), action point spend,
// preconditions, effect. Precondition failures after the spend keep the
// point spent; only guards reject for free.
func (e *Engine) Dispatch(actionID string, params map[string]any) (Result, error) {
	def, ok := actions[actionID]
	if !ok {
		return e.result(""), fmt.Errorf("unknown action %q", actionID)
	}

	if e.Terminal() {
		return e.result(""), reject(KindTerminalState, "The atelier has fallen silent. Only a fresh start remains.")
	}

	// Actions are gated by the presentation scenario, but the engine
	// re-validates rather than trusting the choice list.
	if def.scene != "" && def.scene != e.state.ScenarioID {
		return e.result(""), reject(KindInvalidTarget, "That is not something you can do right now.")
	}

	if def.guard != nil {
		if err := def.guard(e); err != nil {
			return e.result(""), err
		}
	}

	if def.cost > 0 {
		if e.state.ActionPoints < def.cost {
			return e.result(""), reject(KindInsufficientFocus, "You cannot focus any longer today.")
		}
		e.state.ActionPoints -= def.cost
	}

	msg, err := def.run(e, params)
	if err != nil {
		return e.result(""), err
	}
	return e.result(msg), nil
}

func (e *Engine) result(msg string) Result {
	return Result{Message: msg, Choices: e.Choices()}
}

// roll draws a value around base with the given variance from the day's
// stream.
func (e *Engine) roll(base, variance int) int {
	return e.rand.Around(base, variance)
}
