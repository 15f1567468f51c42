package dive

import "math"

const (
	minEstFrac = 0.1 // Fractions are clamped into [minEstFrac, maxEstFrac]
	maxEstFrac = 0.9 // to avoid overweighting near-integral variables.

	roundDownFrac = 0.3 // Below this fraction, always round down.
	roundUpFrac   = 0.7 // Above this fraction, always round up.
	rootDistance  = 0.4 // Distance from the root value that forces a direction.

	binaryBonus = 1000.0 // Priority multiplier for binary variables.
)

// estimate scores a fractional candidate: it returns the preferred
// rounding direction and a nonnegative priority quotient. The bigger
// the quotient, the more attractive the candidate.
//
// forced overrides the direction choice when it is Down or Up; the
// selector uses this for candidates that are roundable in one
// direction only. Apart from the pseudocost and root value queries on
// rel, estimate is a pure function of its inputs.
func estimate(rel Relaxation, c Candidate, forced Direction) (dir Direction, quot float64) {
	frac := c.Frac
	if frac < minEstFrac {
		frac = minEstFrac
	} else if frac > maxEstFrac {
		frac = maxEstFrac
	}
	costDown := rel.Pseudocost(c.Var, Down, frac)
	costUp := rel.Pseudocost(c.Var, Up, frac)
	switch {
	case forced != Any:
		dir = forced
	case frac < roundDownFrac:
		dir = Down
	case frac > roundUpFrac:
		dir = Up
	case c.Value < rel.RootValue(c.Var)-rootDistance:
		dir = Down
	case c.Value > rel.RootValue(c.Var)+rootDistance:
		dir = Up
	case costDown < costUp:
		dir = Down
	default:
		dir = Up
	}
	if dir == Down {
		quot = math.Sqrt(1.0-frac) * (1.0 + costUp) / (1.0 + costDown)
	} else {
		quot = math.Sqrt(frac) * (1.0 + costDown) / (1.0 + costUp)
	}
	if rel.IsBinary(c.Var) {
		quot *= binaryBonus
	}
	return dir, quot
}
