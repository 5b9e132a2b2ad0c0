package state

import (
	"encoding/json"
	"fmt"
	"time"
)

// Encode serializes the state as its persisted snapshot.
func (s *State) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode restores a state from a snapshot. Fields missing from older
// snapshots keep their defaults, so the schema can grow without migrations:
// the snapshot is unmarshalled over a fresh default state.
func Decode(data []byte, today time.Time) (*State, error) {
	s := New(today)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	s.normalize()
	return s, nil
}

// normalize repairs invariants a hand-edited or pre-schema snapshot could
// violate.
func (s *State) normalize() {
	if s.Day < 1 {
		s.Day = 1
	}
	if s.MaxActionPoints < 1 {
		s.MaxActionPoints = 10
	}
	if s.MaxMuses < 1 {
		s.MaxMuses = 5
	}
	if s.Stats == nil {
		s.Stats = make(map[Stat]int, len(AllStats))
	}
	for _, st := range AllStats {
		if _, ok := s.Stats[st]; !ok {
			s.Stats[st] = 50
		}
	}
	if s.Resources == nil {
		s.Resources = make(map[Resource]int)
	}
	for r, v := range s.Resources {
		if v < 0 {
			s.Resources[r] = 0
		}
	}
	if s.Facilities == nil {
		s.Facilities = defaultFacilities()
	}
	for _, k := range FacilityKeys {
		f, ok := s.Facilities[k]
		if !ok || f == nil {
			s.Facilities[k] = &Facility{Built: false, Durability: 100}
			continue
		}
		if f.Durability > 100 {
			f.Durability = 100
		}
		if f.Durability < 0 {
			f.Durability = 0
		}
	}
	if s.ScenarioID == "" {
		s.ScenarioID = "intro"
	}
	s.ClampActionPoints()
}
