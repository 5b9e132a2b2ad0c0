// Package config holds gameplay balance tunables and process configuration.
package config

// Balance holds the numeric knobs of the simulation. Content tables (action
// outcome sets, facility costs, event weights) live next to the code that
// uses them; Balance covers the cross-cutting numbers.
type Balance struct {
	StartActionPoints int `yaml:"start_action_points" json:"start_action_points"`
	ActionPointFloor  int `yaml:"action_point_floor" json:"action_point_floor"`
	ActionPointCeil   int `yaml:"action_point_ceil" json:"action_point_ceil"`

	MaxMuses int `yaml:"max_muses" json:"max_muses"`

	// Daily rollover
	ManualAdvanceCap      int `yaml:"manual_advance_cap" json:"manual_advance_cap"`
	DurabilityDecayPerDay int `yaml:"durability_decay_per_day" json:"durability_decay_per_day"`
	LowReputationDecay    int `yaml:"low_reputation_decay" json:"low_reputation_decay"`
	HighStatThreshold     int `yaml:"high_stat_threshold" json:"high_stat_threshold"`
	LowStatThreshold      int `yaml:"low_stat_threshold" json:"low_stat_threshold"`

	// Gathering yields (base ± variance)
	GatherPaintsBase          int `yaml:"gather_paints_base" json:"gather_paints_base"`
	GatherPaintsVariance      int `yaml:"gather_paints_variance" json:"gather_paints_variance"`
	GatherInspirationBase     int `yaml:"gather_inspiration_base" json:"gather_inspiration_base"`
	GatherInspirationVariance int `yaml:"gather_inspiration_variance" json:"gather_inspiration_variance"`
	BuildReputationBase       int `yaml:"build_reputation_base" json:"build_reputation_base"`
	BuildReputationVariance   int `yaml:"build_reputation_variance" json:"build_reputation_variance"`

	// Facility upkeep
	MaintainCostInspiration int `yaml:"maintain_cost_inspiration" json:"maintain_cost_inspiration"`
	MaintainCostReputation  int `yaml:"maintain_cost_reputation" json:"maintain_cost_reputation"`
}

// Default returns the reference balance.
func Default() Balance {
	return Balance{
		StartActionPoints:         10,
		ActionPointFloor:          5,
		ActionPointCeil:           15,
		MaxMuses:                  5,
		ManualAdvanceCap:          5,
		DurabilityDecayPerDay:     2,
		LowReputationDecay:        1,
		HighStatThreshold:         70,
		LowStatThreshold:          30,
		GatherPaintsBase:          10,
		GatherPaintsVariance:      4,
		GatherInspirationBase:     10,
		GatherInspirationVariance: 4,
		BuildReputationBase:       5,
		BuildReputationVariance:   2,
		MaintainCostInspiration:   10,
		MaintainCostReputation:    10,
	}
}

// Gentle returns an easier balance for relaxed play.
func Gentle() Balance {
	cfg := Default()
	cfg.DurabilityDecayPerDay = 1
	cfg.ManualAdvanceCap = 8
	cfg.LowStatThreshold = 20
	return cfg
}
