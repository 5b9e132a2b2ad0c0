// Package outcome implements weighted selection among eligible candidates.
// It is the single resolution algorithm shared by action outcomes, muse
// communion, exhibitions, and the daily event.
package outcome

import "errors"

// ErrNoneEligible is returned when every candidate's eligibility predicate
// rejects the context. Candidate sets are expected to include an always
// eligible fallback, so hitting this is a table authoring mistake.
var ErrNoneEligible = errors.New("outcome: no eligible candidate")

// Rand is the single-draw surface the resolver needs.
type Rand interface {
	Next() float64
}

// Candidate is one weighted possibility. A nil Eligible means always eligible.
type Candidate[T any] struct {
	ID       string
	Weight   float64
	Eligible func(ctx T) bool
	Apply    func(ctx T) string
}

// Pick selects one eligible candidate proportionally to weight using exactly
// one draw from r. The draw is scaled to the eligible total and the candidate
// list is walked accumulating weight until the cumulative sum reaches the
// draw. If floating point rounding walks past the last candidate, the first
// eligible one is returned.
func Pick[T any](r Rand, ctx T, candidates []Candidate[T]) (Candidate[T], error) {
	eligible := candidates[:0:0]
	for _, c := range candidates {
		if c.Eligible == nil || c.Eligible(ctx) {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return Candidate[T]{}, ErrNoneEligible
	}

	total := 0.0
	for _, c := range eligible {
		total += c.Weight
	}

	draw := r.Next() * total
	cumulative := 0.0
	for _, c := range eligible {
		cumulative += c.Weight
		if cumulative >= draw {
			return c, nil
		}
	}
	return eligible[0], nil
}
