package dive

// roundedBonus is the priority multiplier for candidates that were
// already soft-rounded earlier in the call but failed to get integral.
// Finishing those first keeps the dive from spreading its objective
// perturbations over too many variables.
const roundedBonus = 1000.0

// A selection is the outcome of one selector pass over the current
// fractional candidates.
type selection struct {
	cand Candidate
	dir  Direction
	// allRoundable is true iff every candidate in the pool could be
	// rounded to an integral value without losing relaxation feasibility.
	// It triggers an opportunistic rounding attempt before any edit.
	allRoundable bool
}

// selectCandidate picks the diving variable for this iteration.
//
// Candidates that cannot be rounded in either direction always beat
// roundable ones: an unroundable variable is the real obstacle to an
// integral point, while roundable ones can be fixed up afterwards.
// Within each class, candidates are ranked by their estimator quotient.
// Roundable candidates are only tracked while the running best is
// itself roundable.
//
// ok is false iff the pool is empty.
func selectCandidate(rel Relaxation, cands []Candidate, marks []roundMark) (sel selection, ok bool) {
	bestQuot := -1.0
	bestRoundable := true
	sel.allRoundable = true
	for _, c := range cands {
		if c.Roundable() {
			if !bestRoundable {
				continue // An unroundable candidate was already found.
			}
			// If only one direction is feasible, dive into the other one:
			// the feasible direction is what the rounding attempt tries.
			forced := Any
			if c.MayRoundDown && !c.MayRoundUp {
				forced = Up
			} else if c.MayRoundUp && !c.MayRoundDown {
				forced = Down
			}
			dir, quot := estimate(rel, c, forced)
			if marks[c.Var] != unmarked {
				quot *= roundedBonus
			}
			if quot > bestQuot {
				sel.cand = c
				sel.dir = dir
				bestQuot = quot
			}
		} else {
			sel.allRoundable = false
			dir, quot := estimate(rel, c, Any)
			if marks[c.Var] != unmarked {
				quot *= roundedBonus
			}
			if bestRoundable || quot > bestQuot {
				sel.cand = c
				sel.dir = dir
				bestQuot = quot
				bestRoundable = false
			}
		}
	}
	return sel, bestQuot >= 0
}
