// Package state holds the persistent game aggregate: stats, resources,
// muses, facilities, and the per-day bookkeeping the rollover resets.
package state

import "time"

// Stat names. Stats start at 50, are unbounded above, and ending a day at or
// below zero on a core stat is terminal.
type Stat string

const (
	StatAesthetics  Stat = "aesthetics"
	StatFreedom     Stat = "freedom"
	StatHarmony     Stat = "harmony"
	StatInspiration Stat = "inspiration"
	StatReputation  Stat = "reputation"
)

// CoreStats are the stats whose floor ends the session.
var CoreStats = []Stat{StatAesthetics, StatFreedom, StatHarmony}

// AllStats lists every stat in display order.
var AllStats = []Stat{StatAesthetics, StatFreedom, StatHarmony, StatInspiration, StatReputation}

// Resource names. Resources are clamped to zero at write time; there is no
// debt mechanic.
type Resource string

const (
	ResourcePaints      Resource = "paints"
	ResourceInspiration Resource = "inspiration"
	ResourceReputation  Resource = "reputation"
	ResourceFragments   Resource = "fragments"
)

// Skill is a muse's artistic discipline.
type Skill string

const (
	SkillMusic    Skill = "music"
	SkillPainting Skill = "painting"
	SkillStory    Skill = "story"
	SkillDance    Skill = "dance"
)

// Muse is a companion whose connection level shapes communion outcomes.
type Muse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Personality string `json:"personality"`
	Skill       Skill  `json:"skill"`
	Connection  int    `json:"connection"`
}

// FacilityKey identifies one of the atelier's buildable works.
type FacilityKey string

const (
	FacilitySketchbook  FacilityKey = "sketchbook"
	FacilityCanvas      FacilityKey = "canvas"
	FacilityMasterpiece FacilityKey = "masterpiece"
	FacilitySculpture   FacilityKey = "sculpture"
	FacilityGallery     FacilityKey = "gallery"
)

// FacilityKeys lists facilities in display order.
var FacilityKeys = []FacilityKey{
	FacilitySketchbook,
	FacilityCanvas,
	FacilityMasterpiece,
	FacilitySculpture,
	FacilityGallery,
}

// Facility tracks a built work's durability. Durability stays within [0, 100];
// reaching zero reverts the facility to unbuilt.
type Facility struct {
	Built      bool `json:"built"`
	Durability int  `json:"durability"`
}

// DailyFlags are the one-shot guards reset at every rollover.
type DailyFlags struct {
	HeldExhibition bool     `json:"held_exhibition"`
	CommunedWith   []string `json:"communed_with"`
	MinigamePlayed bool     `json:"minigame_played"`
}

// DailyBonus carries transient modifiers that expire at rollover.
type DailyBonus struct {
	CreationSuccess float64 `json:"creation_success"`
}

// DateLayout is the day-precision calendar format used for LastPlayed.
const DateLayout = "2006-01-02"

// State is the single mutable aggregate owned by the engine.
type State struct {
	Day                 int                       `json:"day"`
	ActionPoints        int                       `json:"action_points"`
	MaxActionPoints     int                       `json:"max_action_points"`
	Stats               map[Stat]int              `json:"stats"`
	Resources           map[Resource]int          `json:"resources"`
	Muses               []Muse                    `json:"muses"`
	MaxMuses            int                       `json:"max_muses"`
	Facilities          map[FacilityKey]*Facility `json:"facilities"`
	ScenarioID          string                    `json:"scenario_id"`
	LastPlayed          string                    `json:"last_played"`
	ManualDayAdvances   int                       `json:"manual_day_advances"`
	DailyEventTriggered bool                      `json:"daily_event_triggered"`
	Flags               DailyFlags                `json:"daily_flags"`
	Bonus               DailyBonus                `json:"daily_bonus"`
	PendingMuse         *Muse                     `json:"pending_muse,omitempty"`
	ArtLevel            int                       `json:"art_level"`
}

// New returns a fresh first-day state for the given calendar date.
func New(today time.Time) *State {
	return &State{
		Day:             1,
		ActionPoints:    10,
		MaxActionPoints: 10,
		Stats: map[Stat]int{
			StatAesthetics:  50,
			StatFreedom:     50,
			StatHarmony:     50,
			StatInspiration: 50,
			StatReputation:  50,
		},
		Resources: map[Resource]int{
			ResourcePaints:      10,
			ResourceInspiration: 10,
			ResourceReputation:  5,
			ResourceFragments:   0,
		},
		Muses: []Muse{
			{ID: "lyra", Name: "Lyra", Personality: "free-spirited", Skill: SkillMusic, Connection: 70},
			{ID: "iris", Name: "Iris", Personality: "delicate", Skill: SkillPainting, Connection: 60},
		},
		MaxMuses:   5,
		Facilities: defaultFacilities(),
		ScenarioID: "intro",
		LastPlayed: today.Format(DateLayout),
	}
}

func defaultFacilities() map[FacilityKey]*Facility {
	m := make(map[FacilityKey]*Facility, len(FacilityKeys))
	for _, k := range FacilityKeys {
		m[k] = &Facility{Built: false, Durability: 100}
	}
	return m
}

// AddStat applies a delta to a stat. Stats may go negative; the floor is only
// checked at rollover.
func (s *State) AddStat(st Stat, delta int) {
	s.Stats[st] += delta
}

// AddResource applies a delta to a resource, clamping storage at zero.
func (s *State) AddResource(r Resource, delta int) {
	v := s.Resources[r] + delta
	if v < 0 {
		v = 0
	}
	s.Resources[r] = v
}

// CanAfford reports whether every entry of the cost map is covered.
func (s *State) CanAfford(cost map[Resource]int) bool {
	for r, amount := range cost {
		if s.Resources[r] < amount {
			return false
		}
	}
	return true
}

// Spend deducts the whole cost map atomically. It mutates nothing and
// reports false when any entry is unaffordable.
func (s *State) Spend(cost map[Resource]int) bool {
	if !s.CanAfford(cost) {
		return false
	}
	for r, amount := range cost {
		s.Resources[r] -= amount
	}
	return true
}

// MuseByID returns the muse with the given id, if present.
func (s *State) MuseByID(id string) *Muse {
	for i := range s.Muses {
		if s.Muses[i].ID == id {
			return &s.Muses[i]
		}
	}
	return nil
}

// CommunedToday reports whether the muse was already communed with today.
func (s *State) CommunedToday(id string) bool {
	for _, c := range s.Flags.CommunedWith {
		if c == id {
			return true
		}
	}
	return false
}

// ClampActionPoints re-establishes 0 <= ActionPoints <= MaxActionPoints after
// passive effects, which may transiently violate either bound.
func (s *State) ClampActionPoints() {
	if s.ActionPoints < 0 {
		s.ActionPoints = 0
	}
	if s.ActionPoints > s.MaxActionPoints {
		s.ActionPoints = s.MaxActionPoints
	}
}

// AdjustConnection moves a muse's connection within [0, 100].
func (m *Muse) AdjustConnection(delta int) {
	m.Connection += delta
	if m.Connection < 0 {
		m.Connection = 0
	}
	if m.Connection > 100 {
		m.Connection = 100
	}
}
