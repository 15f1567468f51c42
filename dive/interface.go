package dive

// A Relaxation is the capability interface the engine needs from the
// linear relaxation and search-tree subsystem. The basic Relaxation
// defined in package lp implements it. Any LP solver binding that can
// answer these queries can be dived on.
//
// All variable arguments are stable zero-based indices. The engine
// only mutates the relaxation through SetObjCoef, SetLowerBound,
// SetUpperBound and Resolve, and only between StartDive and EndDive;
// every such edit is undone before Dive returns.
type Relaxation interface {
	// Status returns the state of the relaxation at the current node.
	Status() Status
	// IsBasic is true iff the current relaxation solution is a basic solution.
	IsBasic() bool
	// Node identifies the current search node.
	Node() int64
	// Depth is the depth of the current node in the search tree.
	Depth() int
	// MaxDepth is the maximal depth of the search tree so far.
	MaxDepth() int
	// NodeIterations is the total number of relaxation iterations spent
	// solving node relaxations over the whole search.
	NodeIterations() int64
	// NVars is the number of problem variables.
	NVars() int
	// NBinaries is the number of binary variables.
	NBinaries() int
	// NIntegers is the number of general (non-binary) integer variables.
	NIntegers() int
	// HasIncumbent is true iff any feasible solution is known for the problem.
	HasIncumbent() bool
	// IsBinary is true iff variable v is binary.
	IsBinary(v int) bool
	// RootValue is the value variable v took in the root relaxation.
	RootValue(v int) float64
	// Pseudocost estimates the objective degradation of moving variable v
	// by frac units in direction dir. The estimate is nonnegative.
	Pseudocost(v int, dir Direction, frac float64) float64
	// Candidates enumerates the current fractional candidates.
	// The returned slice is only valid until the next Resolve.
	Candidates() []Candidate

	// StartDive opens a temporary-modification scope on the relaxation.
	StartDive() error
	// EndDive closes the scope opened by StartDive.
	EndDive() error
	// ObjCoef returns the current working objective coefficient of v.
	ObjCoef(v int) float64
	// SetObjCoef overrides the working objective coefficient of v.
	SetObjCoef(v int, coef float64)
	// LowerBound returns the current working lower bound of v.
	LowerBound(v int) float64
	// UpperBound returns the current working upper bound of v.
	UpperBound(v int) float64
	// SetLowerBound overrides the working lower bound of v.
	SetLowerBound(v int, bound float64)
	// SetUpperBound overrides the working upper bound of v.
	SetUpperBound(v int, bound float64)
	// Resolve re-solves the relaxation, spending at most limit iterations.
	// It returns the number of iterations actually spent. A non-nil error
	// means the oracle failed or was interrupted; a resolve that merely
	// ends non-optimal (infeasible, iteration limit) is not an error.
	Resolve(limit int64) (int64, error)

	// Values returns the current relaxation value of every variable,
	// reusing buf when it is large enough.
	Values(buf []float64) []float64
	// TrySolution submits a candidate assignment for feasibility and
	// acceptance checking. It reports whether the solution was accepted.
	// The engine never retains vals after the call.
	TrySolution(vals []float64) (bool, error)
}
