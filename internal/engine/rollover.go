package engine

import (
	"fmt"
	"strings"

	"github.com/atelierlabs/atelier/internal/outcome"
	"github.com/atelierlabs/atelier/internal/rng"
	"github.com/atelierlabs/atelier/internal/state"
)

// SyncDay advances the in-game day when the real calendar has moved past
// LastPlayed and runs the rollover. It reports whether a rollover fired.
func (e *Engine) SyncDay() (Result, bool) {
	today := e.now().Format(state.DateLayout)
	if e.state.LastPlayed == today {
		return Result{}, false
	}
	e.state.Day++
	e.state.LastPlayed = today
	e.state.ManualDayAdvances = 0
	e.state.DailyEventTriggered = false
	return e.rollover(), true
}

// ManualAdvance skips to the next in-game day without waiting for the
// calendar, capped per real day.
func (e *Engine) ManualAdvance() (Result, error) {
	if e.Terminal() {
		return e.result(""), reject(KindTerminalState, "The atelier has fallen silent. Only a fresh start remains.")
	}
	if e.state.ManualDayAdvances >= e.cfg.ManualAdvanceCap {
		return e.result(""), reject(KindDailyLimitReached, "You cannot skip ahead any further today.")
	}
	e.state.ManualDayAdvances++
	e.state.Day++
	e.state.DailyEventTriggered = false
	return e.rollover(), nil
}

// Rollover runs the daily transition. Calling it again within the same day
// is a no-op.
func (e *Engine) Rollover() Result {
	return e.rollover()
}

// rollover is the daily state machine. Steps run in fixed order against one
// freshly seeded generator: flag the day as processed, reseed, reset the
// per-day budget, apply passive stat thresholds, age facilities, check
// terminal floors, then resolve the single daily event.
func (e *Engine) rollover() Result {
	if e.state.DailyEventTriggered {
		return e.result("")
	}
	e.state.DailyEventTriggered = true
	e.rand = rng.NewForDay(e.now(), e.state.Day)
	e.game = nil

	st := e.state
	st.ActionPoints = st.MaxActionPoints
	st.Flags = state.DailyFlags{}
	st.Bonus = state.DailyBonus{}

	var parts []string
	parts = append(parts, "A new morning rises over the atelier.")
	parts = append(parts, e.applyPassiveEffects()...)
	parts = append(parts, e.ageFacilities()...)
	st.ClampActionPoints()

	if over := e.checkTerminal(); over != "" {
		st.ScenarioID = over
		parts = append(parts, scenarioText(over))
		return Result{Message: strings.Join(parts, " "), Choices: nil}
	}

	st.ScenarioID = sceneIntro
	chosen, err := outcome.Pick(e.rand, e, dailyEvents)
	if err == nil {
		parts = append(parts, chosen.Apply(e))
	}

	return e.result(strings.Join(parts, " "))
}

// applyPassiveEffects checks each stat once against the high and low
// thresholds. Effects on different stats stack.
func (e *Engine) applyPassiveEffects() []string {
	st := e.state
	high := e.cfg.HighStatThreshold
	low := e.cfg.LowStatThreshold
	var parts []string

	if st.Stats[state.StatAesthetics] >= high {
		v := e.roll(3, 1)
		st.AddResource(state.ResourceReputation, v)
		parts = append(parts, fmt.Sprintf("Your refined taste lifts the atelier's standing. (+%d reputation)", v))
	}
	if st.Stats[state.StatFreedom] >= high {
		v := e.roll(5, 2)
		st.AddResource(state.ResourceInspiration, v)
		parts = append(parts, fmt.Sprintf("Your free spirit draws in fresh inspiration. (+%d inspiration)", v))
	}
	if st.Stats[state.StatHarmony] >= high {
		v := e.roll(2, 1)
		for i := range st.Muses {
			st.Muses[i].AdjustConnection(v)
		}
		parts = append(parts, fmt.Sprintf("Your inner harmony deepens every bond. (+%d connection)", v))
	}
	if st.Stats[state.StatInspiration] >= high {
		if st.MaxActionPoints < e.cfg.ActionPointCeil {
			st.MaxActionPoints++
			parts = append(parts, "Brimming with inspiration, your focus grows. (+1 max focus)")
		}
	}
	if st.Stats[state.StatReputation] >= high {
		st.AddResource(state.ResourceFragments, 1)
		parts = append(parts, "An admirer leaves a fragment of a masterpiece. (+1 fragment)")
	}

	if st.Stats[state.StatInspiration] < low {
		st.ActionPoints--
		if st.MaxActionPoints > e.cfg.ActionPointFloor {
			st.MaxActionPoints--
		}
		parts = append(parts, "With no inspiration in sight, your focus slips. (-1 focus)")
	}
	if st.Stats[state.StatReputation] < low {
		if destroyed := e.decayFacilities(e.cfg.LowReputationDecay); len(destroyed) > 0 {
			parts = append(parts, "Neglect and gossip wear at your works; "+strings.Join(destroyed, ", ")+" fell apart.")
		} else {
			parts = append(parts, "Neglect and gossip wear at your works.")
		}
	}
	if st.Stats[state.StatHarmony] < low {
		v := e.roll(3, 1)
		for i := range st.Muses {
			st.Muses[i].AdjustConnection(-v)
		}
		parts = append(parts, fmt.Sprintf("Your restlessness strains every bond. (-%d connection)", v))
	}

	return parts
}

// ageFacilities applies the fixed daily durability decay to every built
// facility.
func (e *Engine) ageFacilities() []string {
	destroyed := e.decayFacilities(e.cfg.DurabilityDecayPerDay)
	if len(destroyed) == 0 {
		return nil
	}
	return []string{"Time claims its due: " + strings.Join(destroyed, ", ") + " crumbled beyond repair."}
}

// decayFacilities lowers durability on built facilities and reverts any that
// reach zero to unbuilt. It returns the names of destroyed works.
func (e *Engine) decayFacilities(amount int) []string {
	if amount <= 0 {
		return nil
	}
	var destroyed []string
	for _, key := range state.FacilityKeys {
		fac := e.state.Facilities[key]
		if !fac.Built {
			continue
		}
		fac.Durability -= amount
		if fac.Durability <= 0 {
			fac.Durability = 0
			fac.Built = false
			destroyed = append(destroyed, facilityDefs[key].Name)
		}
	}
	return destroyed
}

// checkTerminal returns the terminal scenario id when a stat or resource
// floor has been breached, or "" when play continues. Paint exhaustion only
// ends the session after the first day.
func (e *Engine) checkTerminal() string {
	st := e.state
	switch {
	case st.Stats[state.StatAesthetics] <= 0:
		return sceneOverAesthetics
	case st.Stats[state.StatFreedom] <= 0:
		return sceneOverFreedom
	case st.Stats[state.StatHarmony] <= 0:
		return sceneOverHarmony
	case st.Resources[state.ResourcePaints] <= 0 && st.Day > 1:
		return sceneOverResources
	}
	return ""
}
