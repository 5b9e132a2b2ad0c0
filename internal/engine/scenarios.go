package engine

import (
	"fmt"

	"github.com/atelierlabs/atelier/internal/state"
)

// Scenario identifiers. Scenarios gate which choices are shown; action
// legality is re-checked by the dispatcher.
const (
	sceneIntro      = "intro"
	sceneResources  = "resources"
	sceneFacilities = "facilities"
	sceneFreeTime   = "free_time"
	sceneMinigame   = "minigame_palette"
	sceneMuseOffer  = "muse_offer"

	sceneOverAesthetics = "game_over_aesthetics"
	sceneOverFreedom    = "game_over_freedom"
	sceneOverHarmony    = "game_over_harmony"
	sceneOverResources  = "game_over_resources"
)

var scenarioTexts = map[string]string{
	sceneIntro:      "What will you do in the atelier today?",
	sceneResources:  "Which materials will you gather?",
	sceneFacilities: "Which work will you attend to?",
	sceneFreeTime:   "How will you spend your free moment?",
	sceneMuseOffer:  "A stranger waits at the door, asking to become your muse.",

	sceneOverAesthetics: "Your sense of beauty has faded. Nothing lovely can take shape here anymore.",
	sceneOverFreedom:    "Stripped of freedom, your art no longer shines.",
	sceneOverHarmony:    "Without harmony, the atelier falls to scathing reviews and is forgotten.",
	sceneOverResources:  "The last of your materials is gone. The easel stands bare.",
}

func scenarioText(id string) string {
	return scenarioTexts[id]
}

// Choices lists the options available in the current scenario. Facility
// choices are dynamic: unbuilt works whose prerequisites are met, plus
// restoration for anything damaged.
func (e *Engine) Choices() []Choice {
	switch e.state.ScenarioID {
	case sceneIntro:
		return []Choice{
			{Label: "Sketch out ideas", Action: "conceptualize"},
			{Label: "Commune with a muse", Action: "commune"},
			{Label: "Hold a small exhibition", Action: "exhibition"},
			{Label: "Gather materials", Action: "open_resources"},
			{Label: "Attend to your works", Action: "open_facilities"},
			{Label: "Take some free time", Action: "open_free_time"},
			{Label: "Today's creative exercise", Action: "start_minigame"},
		}
	case sceneResources:
		return []Choice{
			{Label: "Mix paints", Action: "gather_paints"},
			{Label: "Gather inspiration", Action: "gather_inspiration"},
			{Label: "Build reputation", Action: "build_reputation"},
			{Label: "Back", Action: "back"},
		}
	case sceneFacilities:
		return e.facilityChoices()
	case sceneFreeTime:
		return []Choice{
			{Label: "Play an impromptu tune", Action: "impromptu_music"},
			{Label: "Take a walk", Action: "take_walk"},
			{Label: "Back", Action: "back"},
		}
	case sceneMinigame:
		choices := make([]Choice, 0, len(paletteColors))
		for _, c := range paletteColors {
			choices = append(choices, Choice{
				Label:  c,
				Action: "pick_color",
				Params: map[string]any{"color": c},
			})
		}
		return choices
	case sceneMuseOffer:
		return []Choice{
			{Label: "Welcome them in", Action: "accept_muse"},
			{Label: "Turn them away", Action: "decline_muse"},
		}
	default:
		// terminal scenarios offer nothing
		return nil
	}
}

func (e *Engine) facilityChoices() []Choice {
	var choices []Choice
	for _, key := range state.FacilityKeys {
		def := facilityDefs[key]
		fac := e.state.Facilities[key]
		if !fac.Built {
			if def.Requires != "" && !e.state.Facilities[def.Requires].Built {
				continue
			}
			choices = append(choices, Choice{
				Label:  fmt.Sprintf("Create %s (%s)", def.Name, costLabel(def.Cost)),
				Action: "build",
				Params: map[string]any{"facility": string(key)},
			})
		}
	}
	for _, key := range state.FacilityKeys {
		def := facilityDefs[key]
		fac := e.state.Facilities[key]
		if fac.Built && fac.Durability < 100 {
			choices = append(choices, Choice{
				Label: fmt.Sprintf("Restore %s (inspiration %d, reputation %d)",
					def.Name, e.cfg.MaintainCostInspiration, e.cfg.MaintainCostReputation),
				Action: "maintain",
				Params: map[string]any{"facility": string(key)},
			})
		}
	}
	return append(choices, Choice{Label: "Back", Action: "back"})
}

func costLabel(cost map[state.Resource]int) string {
	// fixed order for stable labels
	order := []state.Resource{
		state.ResourcePaints,
		state.ResourceInspiration,
		state.ResourceReputation,
		state.ResourceFragments,
	}
	label := ""
	for _, r := range order {
		amount, ok := cost[r]
		if !ok {
			continue
		}
		if label != "" {
			label += ", "
		}
		label += fmt.Sprintf("%s %d", r, amount)
	}
	return label
}
