package lp

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/numlab/godive/dive"
)

const (
	feasTol = 1e-9 // Tolerance on bound and row feasibility
	intTol  = 1e-6 // Tolerance on integrality
)

var _ dive.Relaxation = (*Relaxation)(nil)

// A Relaxation is the bound relaxation of a Problem. It implements
// dive.Relaxation. The working objective and bounds can be overridden
// during a dive and are the only mutable relaxation state; the
// original problem data is never touched.
type Relaxation struct {
	pb  *Problem
	a   *mat.Dense    // Constraint matrix; nil when the problem has no rows
	rhs *mat.VecDense // Right-hand sides
	act *mat.VecDense // Row activities at the current point

	status   dive.Status
	vals     []float64
	rootVals []float64 // Values of the first optimal solve

	obj []float64 // Working objective, overridable while diving
	lb  []float64 // Working lower bounds
	ub  []float64 // Working upper bounds

	pscostDown []float64 // Per-unit downward degradation estimates
	pscostUp   []float64
	cntDown    []float64 // Observation counts for the running averages
	cntUp      []float64

	incumbent    []float64
	incumbentObj float64
	hasIncumbent bool

	diving bool

	node         int64
	depth        int
	maxTreeDepth int
	nodeIters    int64
}

// NewRelaxation builds the bound relaxation of pb. The relaxation
// starts unsolved; call Solve before diving on it.
func NewRelaxation(pb *Problem) *Relaxation {
	n := len(pb.Vars)
	r := &Relaxation{
		pb:         pb,
		status:     dive.Unsolved,
		vals:       make([]float64, n),
		obj:        make([]float64, n),
		lb:         make([]float64, n),
		ub:         make([]float64, n),
		pscostDown: make([]float64, n),
		pscostUp:   make([]float64, n),
		cntDown:    make([]float64, n),
		cntUp:      make([]float64, n),
	}
	for j, v := range pb.Vars {
		r.obj[j] = v.Obj
		r.lb[j] = v.Lower
		r.ub[j] = v.Upper
		// Seed pseudocosts from the objective: moving against the
		// objective gradient degrades the optimum by the coefficient.
		r.pscostDown[j] = math.Max(0, -v.Obj)
		r.pscostUp[j] = math.Max(0, v.Obj)
	}
	if m := len(pb.Constrs); m > 0 {
		r.a = mat.NewDense(m, n, nil)
		r.rhs = mat.NewVecDense(m, nil)
		r.act = mat.NewVecDense(m, nil)
		for i, c := range pb.Constrs {
			r.a.SetRow(i, c.Coefs)
			r.rhs.SetVec(i, c.RHS)
		}
	}
	return r
}

// Solve performs the initial solve of the relaxation and captures the
// root values used by the diving estimator.
func (r *Relaxation) Solve() error {
	used, err := r.reoptimize(math.MaxInt64)
	r.nodeIters += used
	if err != nil {
		return err
	}
	if r.rootVals == nil && r.status == dive.Optimal {
		r.rootVals = append([]float64(nil), r.vals...)
	}
	return nil
}

// reoptimize recomputes the bound-optimal point under the working
// objective and bounds, spending one iteration per column scanned.
func (r *Relaxation) reoptimize(limit int64) (int64, error) {
	var used int64
	for j := range r.obj {
		if used >= limit {
			r.status = dive.IterLimit
			return used, nil
		}
		used++
		lo, hi := r.lb[j], r.ub[j]
		if lo > hi+feasTol {
			r.status = dive.Infeasible
			return used, nil
		}
		switch {
		case r.obj[j] > 0:
			if math.IsInf(lo, -1) {
				r.status = dive.Unbounded
				return used, nil
			}
			r.vals[j] = lo
		case r.obj[j] < 0:
			if math.IsInf(hi, 1) {
				r.status = dive.Unbounded
				return used, nil
			}
			r.vals[j] = hi
		default:
			// Free direction: park the variable at a finite bound.
			switch {
			case !math.IsInf(lo, -1):
				r.vals[j] = lo
			case !math.IsInf(hi, 1):
				r.vals[j] = hi
			default:
				r.vals[j] = 0
			}
		}
	}
	r.status = dive.Optimal
	if r.a != nil {
		r.act.MulVec(r.a, mat.NewVecDense(len(r.vals), r.vals))
	}
	return used, nil
}

// Status returns the state of the relaxation.
func (r *Relaxation) Status() dive.Status {
	return r.status
}

// IsBasic is true iff the current point is a vertex of the relaxation.
// Bound-optimal points always are.
func (r *Relaxation) IsBasic() bool {
	return r.status == dive.Optimal
}

// Node identifies the current search node. See SetNode.
func (r *Relaxation) Node() int64 { return r.node }

// Depth is the depth of the current node. See SetTreeDepth.
func (r *Relaxation) Depth() int { return r.depth }

// MaxDepth is the maximal tree depth so far. See SetTreeDepth.
func (r *Relaxation) MaxDepth() int { return r.maxTreeDepth }

// NodeIterations is the total number of iterations spent in solves and
// resolves of this relaxation.
func (r *Relaxation) NodeIterations() int64 { return r.nodeIters }

// SetNode moves the relaxation to another search node. Drivers use it
// to model tree positions; the relaxation itself has no tree.
func (r *Relaxation) SetNode(node int64) { r.node = node }

// SetTreeDepth sets the current and maximal search depth.
func (r *Relaxation) SetTreeDepth(depth, maxDepth int) {
	r.depth = depth
	r.maxTreeDepth = maxDepth
}

// NVars is the number of problem variables.
func (r *Relaxation) NVars() int { return len(r.pb.Vars) }

// NBinaries is the number of binary variables.
func (r *Relaxation) NBinaries() int {
	nb := 0
	for _, v := range r.pb.Vars {
		if v.IsBinary() {
			nb++
		}
	}
	return nb
}

// NIntegers is the number of non-binary integer variables.
func (r *Relaxation) NIntegers() int {
	ni := 0
	for _, v := range r.pb.Vars {
		if v.Integer && !v.IsBinary() {
			ni++
		}
	}
	return ni
}

// HasIncumbent is true iff a feasible solution was accepted.
func (r *Relaxation) HasIncumbent() bool { return r.hasIncumbent }

// Incumbent returns the best accepted solution and its objective.
func (r *Relaxation) Incumbent() (vals []float64, obj float64, ok bool) {
	if !r.hasIncumbent {
		return nil, 0, false
	}
	return append([]float64(nil), r.incumbent...), r.incumbentObj, true
}

// IsBinary is true iff variable v is binary.
func (r *Relaxation) IsBinary(v int) bool {
	return r.pb.Vars[v].IsBinary()
}

// RootValue is the value of v in the first optimal solve.
func (r *Relaxation) RootValue(v int) float64 {
	if r.rootVals == nil {
		return r.vals[v]
	}
	return r.rootVals[v]
}

// Pseudocost estimates the objective degradation of rounding variable
// v in direction dir, given the fractional part frac of its value.
// Rounding down travels frac units, rounding up 1-frac units.
func (r *Relaxation) Pseudocost(v int, dir dive.Direction, frac float64) float64 {
	if dir == dive.Down {
		return r.pscostDown[v] * frac
	}
	return r.pscostUp[v] * (1.0 - frac)
}

// UpdatePseudocost folds one observed per-unit degradation into the
// running estimate for v in direction dir.
func (r *Relaxation) UpdatePseudocost(v int, dir dive.Direction, perUnit float64) {
	if perUnit < 0 {
		perUnit = 0
	}
	if dir == dive.Down {
		r.cntDown[v]++
		r.pscostDown[v] += (perUnit - r.pscostDown[v]) / r.cntDown[v]
	} else {
		r.cntUp[v]++
		r.pscostUp[v] += (perUnit - r.pscostUp[v]) / r.cntUp[v]
	}
}

// Candidates enumerates the integer variables whose current value is
// fractional, with their feasible rounding directions.
func (r *Relaxation) Candidates() []dive.Candidate {
	if r.status != dive.Optimal {
		return nil
	}
	var cands []dive.Candidate
	for j, v := range r.pb.Vars {
		if !v.Integer {
			continue
		}
		val := r.vals[j]
		frac := val - math.Floor(val)
		if frac <= intTol || frac >= 1.0-intTol {
			continue
		}
		cands = append(cands, dive.Candidate{
			Var:          j,
			Value:        val,
			Frac:         frac,
			MayRoundDown: r.mayShift(j, -frac),
			MayRoundUp:   r.mayShift(j, 1.0-frac),
		})
	}
	return cands
}

// mayShift reports whether moving variable j by delta keeps it inside
// its working bounds and every row within its right-hand side.
func (r *Relaxation) mayShift(j int, delta float64) bool {
	val := r.vals[j] + delta
	if val < r.lb[j]-feasTol || val > r.ub[j]+feasTol {
		return false
	}
	if r.a == nil {
		return true
	}
	m, _ := r.a.Dims()
	for i := 0; i < m; i++ {
		coef := r.a.At(i, j)
		if coef == 0 {
			continue
		}
		if r.act.AtVec(i)+coef*delta > r.rhs.AtVec(i)+feasTol {
			return false
		}
	}
	return true
}

// StartDive opens a temporary-modification scope.
func (r *Relaxation) StartDive() error {
	if r.diving {
		return errors.New("lp: dive already in progress")
	}
	if r.status == dive.Unsolved {
		return errors.New("lp: cannot dive on an unsolved relaxation")
	}
	r.diving = true
	return nil
}

// EndDive closes the scope opened by StartDive and re-solves the
// relaxation so the exposed point matches the restored data.
func (r *Relaxation) EndDive() error {
	if !r.diving {
		return errors.New("lp: no dive in progress")
	}
	r.diving = false
	_, err := r.reoptimize(math.MaxInt64)
	return err
}

// ObjCoef returns the working objective coefficient of v.
func (r *Relaxation) ObjCoef(v int) float64 { return r.obj[v] }

// SetObjCoef overrides the working objective coefficient of v.
func (r *Relaxation) SetObjCoef(v int, coef float64) { r.obj[v] = coef }

// LowerBound returns the working lower bound of v.
func (r *Relaxation) LowerBound(v int) float64 { return r.lb[v] }

// UpperBound returns the working upper bound of v.
func (r *Relaxation) UpperBound(v int) float64 { return r.ub[v] }

// SetLowerBound overrides the working lower bound of v.
func (r *Relaxation) SetLowerBound(v int, bound float64) { r.lb[v] = bound }

// SetUpperBound overrides the working upper bound of v.
func (r *Relaxation) SetUpperBound(v int, bound float64) { r.ub[v] = bound }

// Resolve re-solves the relaxation under an iteration cap.
func (r *Relaxation) Resolve(limit int64) (int64, error) {
	if limit <= 0 {
		r.status = dive.IterLimit
		return 0, nil
	}
	used, err := r.reoptimize(limit)
	r.nodeIters += used
	return used, err
}

// Values returns the current relaxation values, reusing buf when it is
// large enough.
func (r *Relaxation) Values(buf []float64) []float64 {
	if cap(buf) < len(r.vals) {
		buf = make([]float64, len(r.vals))
	}
	buf = buf[:len(r.vals)]
	copy(buf, r.vals)
	return buf
}

// ObjValue evaluates the original problem objective at the current point.
func (r *Relaxation) ObjValue() float64 {
	return r.pb.Objective(r.vals)
}

// TrySolution checks a candidate assignment against the original
// bounds, the integrality marks, the constraint rows and the incumbent
// objective. Accepted solutions replace the incumbent.
func (r *Relaxation) TrySolution(vals []float64) (bool, error) {
	if len(vals) != len(r.pb.Vars) {
		return false, errors.Errorf("lp: solution has %d values, want %d", len(vals), len(r.pb.Vars))
	}
	for j, v := range r.pb.Vars {
		if vals[j] < v.Lower-feasTol || vals[j] > v.Upper+feasTol {
			return false, nil
		}
		if v.Integer {
			frac := vals[j] - math.Floor(vals[j])
			if frac > intTol && frac < 1.0-intTol {
				return false, nil
			}
		}
	}
	if r.a != nil {
		var act mat.VecDense
		act.MulVec(r.a, mat.NewVecDense(len(vals), vals))
		m, _ := r.a.Dims()
		for i := 0; i < m; i++ {
			if act.AtVec(i) > r.rhs.AtVec(i)+feasTol {
				return false, nil
			}
		}
	}
	obj := r.pb.Objective(vals)
	if r.hasIncumbent && obj >= r.incumbentObj-feasTol {
		return false, nil
	}
	r.incumbent = append(r.incumbent[:0], vals...)
	r.incumbentObj = obj
	r.hasIncumbent = true
	return true, nil
}
