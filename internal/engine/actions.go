package engine

import (
	"fmt"

	"github.com/atelierlabs/atelier/internal/outcome"
	"github.com/atelierlabs/atelier/internal/state"
)

// actionDef describes one dispatchable action. cost is the action point
// price (navigation is free). scene restricts where the action is legal; the
// dispatcher enforces it independently of the choice list. guard runs before
// any point is spent, so daily-limit rejections cost nothing.
type actionDef struct {
	cost  int
	scene string
	guard func(*Engine) error
	run   func(*Engine, map[string]any) (string, error)
}

var actions = map[string]actionDef{
	// intro
	"conceptualize": {cost: 1, scene: sceneIntro, run: runConceptualize},
	"commune":       {cost: 1, scene: sceneIntro, guard: guardCommune, run: runCommune},
	"exhibition":    {cost: 1, scene: sceneIntro, guard: guardExhibition, run: runExhibition},
	"start_minigame": {
		cost:  1,
		scene: sceneIntro,
		guard: guardMinigame,
		run:   runStartMinigame,
	},

	// gathering
	"gather_paints":      {cost: 1, scene: sceneResources, run: runGatherPaints},
	"gather_inspiration": {cost: 1, scene: sceneResources, run: runGatherInspiration},
	"build_reputation":   {cost: 1, scene: sceneResources, run: runBuildReputation},

	// facilities
	"build":    {cost: 1, scene: sceneFacilities, run: runBuild},
	"maintain": {cost: 1, scene: sceneFacilities, run: runMaintain},

	// free time
	"impromptu_music": {cost: 1, scene: sceneFreeTime, run: runImpromptuMusic},
	"take_walk":       {cost: 1, scene: sceneFreeTime, run: runTakeWalk},

	// minigame
	"pick_color": {scene: sceneMinigame, run: runPickColor},

	// muse offer
	"accept_muse":  {scene: sceneMuseOffer, run: runAcceptMuse},
	"decline_muse": {scene: sceneMuseOffer, run: runDeclineMuse},

	// navigation
	"open_resources":  {scene: sceneIntro, run: navigateTo(sceneResources)},
	"open_facilities": {scene: sceneIntro, run: navigateTo(sceneFacilities)},
	"open_free_time":  {scene: sceneIntro, run: navigateTo(sceneFreeTime)},
	"back":            {run: navigateTo(sceneIntro)},
}

func navigateTo(scene string) func(*Engine, map[string]any) (string, error) {
	return func(e *Engine, _ map[string]any) (string, error) {
		if scene == sceneIntro {
			// backing out of an active exercise forfeits it
			e.game = nil
		}
		e.state.ScenarioID = scene
		return scenarioText(scene), nil
	}
}

// --- conceptualize ---

var conceptualizeOutcomes = []outcome.Candidate[*Engine]{
	{
		ID:     "vision",
		Weight: 30,
		Eligible: func(e *Engine) bool {
			return e.state.Stats[state.StatInspiration] > 60
		},
		Apply: func(e *Engine) string {
			v := e.roll(10, 5)
			e.state.AddStat(state.StatAesthetics, v)
			return fmt.Sprintf("A fresh vision sharpens your sense of beauty. (+%d aesthetics)", v)
		},
	},
	{
		ID:     "inner_calm",
		Weight: 25,
		Apply: func(e *Engine) string {
			v := e.roll(5, 2)
			e.state.AddStat(state.StatHarmony, v)
			return fmt.Sprintf("Sketching ideas, you find an inner calm. (+%d harmony)", v)
		},
	},
	{
		ID:     "burned_out",
		Weight: 20,
		Apply: func(e *Engine) string {
			v := e.roll(5, 2)
			e.state.AddResource(state.ResourceInspiration, -v)
			return fmt.Sprintf("You lose yourself in planning and burn through inspiration. (-%d inspiration)", v)
		},
	},
	{
		ID:     "blank_page",
		Weight: 15,
		Eligible: func(e *Engine) bool {
			return e.state.Stats[state.StatInspiration] < 40
		},
		Apply: func(e *Engine) string {
			v := e.roll(5, 2)
			e.state.AddStat(state.StatFreedom, -v)
			return fmt.Sprintf("No idea comes, and the blank page weighs on you. (-%d freedom)", v)
		},
	},
}

func runConceptualize(e *Engine, _ map[string]any) (string, error) {
	chosen, err := outcome.Pick(e.rand, e, conceptualizeOutcomes)
	if err != nil {
		return "", err
	}
	return chosen.Apply(e), nil
}

// --- commune ---

type communion struct {
	eng  *Engine
	muse *state.Muse
}

var communeOutcomes = []outcome.Candidate[communion]{
	{
		ID:     "deepened_bond",
		Weight: 40,
		Eligible: func(c communion) bool {
			return c.muse.Connection < 80
		},
		Apply: func(c communion) string {
			v := c.eng.roll(10, 5)
			c.muse.AdjustConnection(v)
			return fmt.Sprintf("You and %s share a deep moment. (+%d connection)", c.muse.Name, v)
		},
	},
	{
		ID:     "borrowed_spark",
		Weight: 30,
		Apply: func(c communion) string {
			v := c.eng.roll(5, 2)
			c.eng.state.AddStat(state.StatAesthetics, v)
			return fmt.Sprintf("%s lends you an artistic spark. (+%d aesthetics)", c.muse.Name, v)
		},
	},
	{
		ID:     "discord",
		Weight: 20,
		Eligible: func(c communion) bool {
			return c.eng.state.Stats[state.StatHarmony] < 40
		},
		Apply: func(c communion) string {
			v := c.eng.roll(10, 3)
			c.muse.AdjustConnection(-v)
			return fmt.Sprintf("Your unquiet mind pushes %s away. (-%d connection)", c.muse.Name, v)
		},
	},
}

func guardCommune(e *Engine) error {
	if len(e.communableMuses()) == 0 {
		return reject(KindDailyLimitReached, "Every muse has already shared their time with you today.")
	}
	return nil
}

func (e *Engine) communableMuses() []*state.Muse {
	var out []*state.Muse
	for i := range e.state.Muses {
		if !e.state.CommunedToday(e.state.Muses[i].ID) {
			out = append(out, &e.state.Muses[i])
		}
	}
	return out
}

func runCommune(e *Engine, _ map[string]any) (string, error) {
	eligible := e.communableMuses()
	muse := eligible[e.rand.IntN(len(eligible))]
	e.state.Flags.CommunedWith = append(e.state.Flags.CommunedWith, muse.ID)

	chosen, err := outcome.Pick(e.rand, communion{eng: e, muse: muse}, communeOutcomes)
	if err != nil {
		return "", err
	}
	return chosen.Apply(communion{eng: e, muse: muse}), nil
}

// --- exhibition ---

var exhibitionOutcomes = []outcome.Candidate[*Engine]{
	{
		ID:     "acclaim",
		Weight: 40,
		Eligible: func(e *Engine) bool {
			return e.state.Stats[state.StatAesthetics] > 60
		},
		Apply: func(e *Engine) string {
			v := e.roll(10, 3)
			e.state.AddStat(state.StatReputation, v)
			return fmt.Sprintf("Your small exhibition draws quiet acclaim. (+%d reputation)", v)
		},
	},
	{
		ID:     "new_ideas",
		Weight: 30,
		Apply: func(e *Engine) string {
			v := e.roll(10, 3)
			e.state.AddStat(state.StatInspiration, v)
			return fmt.Sprintf("Talking with visitors fills you with new ideas. (+%d inspiration)", v)
		},
	},
	{
		ID:     "harsh_review",
		Weight: 20,
		Eligible: func(e *Engine) bool {
			return e.state.Stats[state.StatHarmony] < 40
		},
		Apply: func(e *Engine) string {
			v := e.roll(10, 4)
			e.state.AddStat(state.StatReputation, -v)
			return fmt.Sprintf("The disjointed arrangement draws harsh reviews. (-%d reputation)", v)
		},
	},
}

func guardExhibition(e *Engine) error {
	if e.state.Flags.HeldExhibition {
		return reject(KindDailyLimitReached, "You have already held an exhibition today.")
	}
	return nil
}

func runExhibition(e *Engine, _ map[string]any) (string, error) {
	e.state.Flags.HeldExhibition = true
	chosen, err := outcome.Pick(e.rand, e, exhibitionOutcomes)
	if err != nil {
		return "", err
	}
	return chosen.Apply(e), nil
}

// --- gathering ---

func runGatherPaints(e *Engine, _ map[string]any) (string, error) {
	v := e.roll(e.cfg.GatherPaintsBase, e.cfg.GatherPaintsVariance)
	e.state.AddResource(state.ResourcePaints, v)
	return fmt.Sprintf("You mix a fresh batch of paints. (+%d paints)", v), nil
}

func runGatherInspiration(e *Engine, _ map[string]any) (string, error) {
	v := e.roll(e.cfg.GatherInspirationBase, e.cfg.GatherInspirationVariance)
	e.state.AddResource(state.ResourceInspiration, v)
	return fmt.Sprintf("You wander and gather stray inspiration. (+%d inspiration)", v), nil
}

func runBuildReputation(e *Engine, _ map[string]any) (string, error) {
	v := e.roll(e.cfg.BuildReputationBase, e.cfg.BuildReputationVariance)
	e.state.AddResource(state.ResourceReputation, v)
	return fmt.Sprintf("Word of your atelier spreads a little further. (+%d reputation)", v), nil
}

// --- free time ---

func runImpromptuMusic(e *Engine, _ map[string]any) (string, error) {
	if e.rand.Next() < 0.5 {
		v := e.roll(10, 5)
		e.state.AddStat(state.StatInspiration, v)
		return fmt.Sprintf("An impromptu melody stirs something new in you. (+%d inspiration)", v), nil
	}
	v := e.roll(5, 2)
	e.state.AddStat(state.StatHarmony, -v)
	return fmt.Sprintf("The notes refuse to come together. (-%d harmony)", v), nil
}

func runTakeWalk(e *Engine, _ map[string]any) (string, error) {
	if e.rand.Next() < 0.6 {
		v := e.roll(10, 5)
		e.state.AddStat(state.StatFreedom, v)
		return fmt.Sprintf("A long walk leaves you feeling unbound. (+%d freedom)", v), nil
	}
	return "An unremarkable walk. Still, the air was nice.", nil
}

// --- muse offer ---

func runAcceptMuse(e *Engine, _ map[string]any) (string, error) {
	pending := e.state.PendingMuse
	if pending == nil {
		return "", reject(KindInvalidTarget, "No muse is waiting at your door.")
	}
	if len(e.state.Muses) >= e.state.MaxMuses {
		return "", reject(KindInvalidTarget, "Your atelier cannot hold another muse.")
	}
	e.state.Muses = append(e.state.Muses, *pending)
	e.state.PendingMuse = nil
	e.state.ScenarioID = sceneIntro
	return fmt.Sprintf("%s joins your atelier.", pending.Name), nil
}

func runDeclineMuse(e *Engine, _ map[string]any) (string, error) {
	pending := e.state.PendingMuse
	if pending == nil {
		return "", reject(KindInvalidTarget, "No muse is waiting at your door.")
	}
	e.state.PendingMuse = nil
	e.state.ScenarioID = sceneIntro
	return fmt.Sprintf("%s bows and departs without a word.", pending.Name), nil
}
