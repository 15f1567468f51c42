package dive

// Describes basic types and constants used by the diving engine.

// Status is the state of the linear relaxation as reported by the
// oracle, either after the initial solve or after a resolve.
type Status byte

const (
	// Unsolved means the relaxation has not been solved at the current node yet.
	Unsolved = Status(iota)
	// Optimal means the relaxation is solved to optimality.
	Optimal
	// Infeasible means the relaxation has no feasible point.
	Infeasible
	// IterLimit means the last resolve hit its iteration cap.
	IterLimit
	// Unbounded means the relaxation objective is unbounded below.
	Unbounded
)

func (s Status) String() string {
	switch s {
	case Unsolved:
		return "UNSOLVED"
	case Optimal:
		return "OPTIMAL"
	case Infeasible:
		return "INFEASIBLE"
	case IterLimit:
		return "ITERLIMIT"
	case Unbounded:
		return "UNBOUNDED"
	default:
		panic("invalid status")
	}
}

// Direction is a rounding direction for a fractional variable.
type Direction int8

const (
	// Down rounds toward the floor of the current value.
	Down = Direction(-1)
	// Any lets the estimator pick the direction.
	Any = Direction(0)
	// Up rounds toward the ceiling of the current value.
	Up = Direction(1)
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Any:
		return "any"
	case Up:
		return "up"
	default:
		panic("invalid direction")
	}
}

// Result is the outcome of one invocation of the heuristic.
type Result byte

const (
	// NotRun means a precondition failed and no dive was attempted.
	NotRun = Result(iota)
	// Delayed means the relaxation was not solved yet; the call should be retried later.
	Delayed
	// NoSolution means a dive ran but produced no accepted solution.
	NoSolution
	// FoundSolution means at least one candidate solution was accepted.
	FoundSolution
)

func (r Result) String() string {
	switch r {
	case NotRun:
		return "not run"
	case Delayed:
		return "delayed"
	case NoSolution:
		return "no solution found"
	case FoundSolution:
		return "solution found"
	default:
		panic("invalid result")
	}
}

// A Candidate is an integer-constrained variable whose current
// relaxation value is fractional. Candidates are recomputed after
// every resolve and are never retained across iterations.
type Candidate struct {
	Var          int     // Stable index of the variable
	Value        float64 // Current relaxation value
	Frac         float64 // Fractional part of Value, in (0, 1)
	MayRoundDown bool    // Rounding down preserves relaxation feasibility
	MayRoundUp   bool    // Rounding up preserves relaxation feasibility
}

// Roundable is true iff at least one rounding direction preserves feasibility.
func (c Candidate) Roundable() bool {
	return c.MayRoundDown || c.MayRoundUp
}

// roundMark is the per-variable soft-rounding state within one call.
// A variable soft-rounded once is never soft-rounded again in the same
// call: its next selection forces a hard bound edit.
type roundMark int8

const (
	markedDown = roundMark(-1)
	unmarked   = roundMark(0)
	markedUp   = roundMark(1)
)
