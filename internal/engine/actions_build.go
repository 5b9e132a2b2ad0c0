package engine

import (
	"fmt"

	"github.com/atelierlabs/atelier/internal/state"
)

// facilityDef is the configuration row for one buildable work: its cost map,
// the stat it rewards on completion, and an optional prerequisite facility.
type facilityDef struct {
	Name           string
	Cost           map[state.Resource]int
	RewardStat     state.Stat
	RewardBase     int
	RewardVariance int
	Requires       state.FacilityKey
	Built          string // message format, takes the reward delta
}

var facilityDefs = map[state.FacilityKey]facilityDef{
	state.FacilitySketchbook: {
		Name:           "sketchbook",
		Cost:           map[state.Resource]int{state.ResourceInspiration: 50, state.ResourceReputation: 20},
		RewardStat:     state.StatAesthetics,
		RewardBase:     10,
		RewardVariance: 3,
		Built:          "You bind a new sketchbook and fill its first page. (+%d aesthetics)",
	},
	state.FacilityCanvas: {
		Name:           "canvas",
		Cost:           map[state.Resource]int{state.ResourceReputation: 30, state.ResourcePaints: 30},
		RewardStat:     state.StatFreedom,
		RewardBase:     10,
		RewardVariance: 3,
		Built:          "A broad canvas now waits by the window. (+%d freedom)",
	},
	state.FacilityMasterpiece: {
		Name:           "masterpiece",
		Cost:           map[state.Resource]int{state.ResourceInspiration: 100, state.ResourceReputation: 50},
		RewardStat:     state.StatHarmony,
		RewardBase:     15,
		RewardVariance: 5,
		Built:          "The outline of a masterpiece takes shape. (+%d harmony)",
	},
	state.FacilitySculpture: {
		Name:           "sculpture",
		Cost:           map[state.Resource]int{state.ResourceReputation: 80, state.ResourcePaints: 40},
		RewardStat:     state.StatAesthetics,
		RewardBase:     15,
		RewardVariance: 5,
		Built:          "Stone gives way to form under your hands. (+%d aesthetics)",
	},
	state.FacilityGallery: {
		Name:           "personal gallery",
		Cost:           map[state.Resource]int{state.ResourceReputation: 150, state.ResourceFragments: 5},
		RewardStat:     state.StatFreedom,
		RewardBase:     20,
		RewardVariance: 5,
		Requires:       state.FacilityCanvas,
		Built:          "Your own gallery opens its doors. (+%d freedom)",
	},
}

func facilityFromParams(params map[string]any) (state.FacilityKey, error) {
	raw, ok := params["facility"]
	if !ok {
		return "", reject(KindInvalidTarget, "No facility was chosen.")
	}
	name, ok := raw.(string)
	if !ok {
		return "", reject(KindInvalidTarget, "No facility was chosen.")
	}
	key := state.FacilityKey(name)
	if _, ok := facilityDefs[key]; !ok {
		return "", reject(KindInvalidTarget, "There is no such work to attempt.")
	}
	return key, nil
}

func runBuild(e *Engine, params map[string]any) (string, error) {
	key, err := facilityFromParams(params)
	if err != nil {
		return "", err
	}
	def := facilityDefs[key]
	fac := e.state.Facilities[key]

	// The choice list filters these out, but replayed or concurrent input
	// must not slip past.
	if fac.Built {
		return "", reject(KindInvalidTarget, "The %s is already part of your atelier.", def.Name)
	}
	if def.Requires != "" && !e.state.Facilities[def.Requires].Built {
		return "", reject(KindInvalidTarget, "The %s needs the %s first.", def.Name, facilityDefs[def.Requires].Name)
	}
	if !e.state.Spend(def.Cost) {
		return "", reject(KindInsufficientResource, "You lack the materials for the %s.", def.Name)
	}

	fac.Built = true
	fac.Durability = 100
	v := e.roll(def.RewardBase, def.RewardVariance)
	e.state.AddStat(def.RewardStat, v)
	return fmt.Sprintf(def.Built, v), nil
}

func runMaintain(e *Engine, params map[string]any) (string, error) {
	key, err := facilityFromParams(params)
	if err != nil {
		return "", err
	}
	def := facilityDefs[key]
	fac := e.state.Facilities[key]

	if !fac.Built {
		return "", reject(KindInvalidTarget, "There is no %s to restore.", def.Name)
	}
	if fac.Durability >= 100 {
		return "", reject(KindInvalidTarget, "The %s is in perfect condition.", def.Name)
	}
	cost := map[state.Resource]int{
		state.ResourceInspiration: e.cfg.MaintainCostInspiration,
		state.ResourceReputation:  e.cfg.MaintainCostReputation,
	}
	if !e.state.Spend(cost) {
		return "", reject(KindInsufficientResource, "You lack the materials to restore the %s.", def.Name)
	}
	fac.Durability = 100
	return fmt.Sprintf("You carefully restore the %s.", def.Name), nil
}
