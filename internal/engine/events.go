package engine

import (
	"fmt"
	"strings"

	"github.com/atelierlabs/atelier/internal/outcome"
	"github.com/atelierlabs/atelier/internal/state"
)

// dailyEvents is the candidate set for the single random event each rollover
// resolves. quiet_day keeps the set non-empty whatever the state looks like.
var dailyEvents = []outcome.Candidate[*Engine]{
	{
		ID:     "critic_visit",
		Weight: 10,
		Eligible: func(e *Engine) bool {
			return e.state.Stats[state.StatReputation] > 30
		},
		Apply: func(e *Engine) string {
			v := e.roll(10, 3)
			e.state.AddStat(state.StatReputation, -v)
			e.state.AddStat(state.StatHarmony, -v)
			return fmt.Sprintf("A critic's scathing column unsettles the atelier. (-%d reputation, -%d harmony)", v, v)
		},
	},
	{
		ID:     "inspiration_drought",
		Weight: 5,
		Apply: func(e *Engine) string {
			v := e.roll(15, 5)
			e.state.AddResource(state.ResourceInspiration, -v)
			e.state.AddStat(state.StatFreedom, -5)
			return fmt.Sprintf("A drought of inspiration settles in. (-%d inspiration, -5 freedom)", v)
		},
	},
	{
		ID:     "new_muse",
		Weight: 15,
		Apply: func(e *Engine) string {
			if len(e.state.Muses) < e.state.MaxMuses {
				m := e.generateMuse()
				e.state.PendingMuse = &m
				e.state.ScenarioID = sceneMuseOffer
				return fmt.Sprintf("%s, a %s soul drawn to %s, asks to become your muse.", m.Name, m.Personality, m.Skill)
			}
			v := e.roll(10, 5)
			e.state.AddStat(state.StatInspiration, v)
			return fmt.Sprintf("A passing stranger leaves you quietly inspired. (+%d inspiration)", v)
		},
	},
	{
		ID:     "quiet_day",
		Weight: 10,
		Apply: func(e *Engine) string {
			return "The morning passes quietly, the light soft on your easel."
		},
	},
}

var museNames = []string{"Echo", "Sera", "Nox", "Vida", "Rune", "Mica"}
var musePersonalities = []string{"bold", "quiet", "wistful", "radiant"}
var museSkills = []state.Skill{state.SkillMusic, state.SkillPainting, state.SkillStory, state.SkillDance}

// generateMuse draws a candidate muse from the day's stream. The id is
// derived from the name and day so replays of the same day stage the same
// muse.
func (e *Engine) generateMuse() state.Muse {
	name := museNames[e.rand.IntN(len(museNames))]
	return state.Muse{
		ID:          fmt.Sprintf("%s-%d", strings.ToLower(name), e.state.Day),
		Name:        name,
		Personality: musePersonalities[e.rand.IntN(len(musePersonalities))],
		Skill:       museSkills[e.rand.IntN(len(museSkills))],
		Connection:  e.roll(40, 10),
	}
}
