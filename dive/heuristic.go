package dive

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

const (
	// softObjScale is multiplied by the iteration index to obtain the
	// magnitude of a soft objective perturbation.
	softObjScale = 1000.0
	// minDiveIterations is the number of loop iterations every dive may
	// perform regardless of progress.
	minDiveIterations = 10
)

// Stats are statistics about the dives performed by a heuristic
// instance. They are provided for information purpose only.
type Stats struct {
	NbCalls      int64 // How many calls actually dived (failed preconditions excluded)
	NbSolsFound  int64 // How many candidate solutions were accepted
	NbResolves   int64 // How many relaxation resolves were issued
	NbIterations int64 // How many relaxation iterations those resolves spent
	NbSoftEdits  int64 // How many soft objective perturbations were applied
	NbHardEdits  int64 // How many hard bound tightenings were applied
}

// A Heuristic runs objective pseudocost diving over a relaxation.
// It is the main data structure of the engine. A Heuristic is not safe
// for concurrent use: one dive runs to completion synchronously inside
// the calling search driver.
type Heuristic struct {
	Verbose bool  // Indicates whether the heuristic should display information while diving. False by default.
	Stats   Stats // Statistics about the diving process.

	rel      Relaxation
	cfg      Config
	budget   budget
	lastNode int64     // Node of the last dive; at most one dive per node
	diving   bool      // True while a session is open
	solBuf   []float64 // Reusable snapshot buffer for candidate solutions
}

// New makes a diving heuristic over the given relaxation.
func New(rel Relaxation, cfg Config) *Heuristic {
	return &Heuristic{
		rel:      rel,
		cfg:      cfg,
		lastNode: -1,
	}
}

// Config returns the registration record the heuristic was built with.
func (h *Heuristic) Config() Config {
	return h.cfg
}

// Consumed returns the lifetime relaxation iteration consumption.
func (h *Heuristic) Consumed() int64 {
	return h.budget.consumed
}

// Reset clears all lifetime state. It must be called when the owning
// solve is reinitialized for a new problem, and never during a search.
func (h *Heuristic) Reset() {
	if h.diving {
		panic("cannot call Reset() during a dive")
	}
	h.budget.reset()
	h.lastNode = -1
	h.Stats = Stats{}
}

// Dive runs one invocation of the heuristic.
//
// The call validates its preconditions, opens a dive session, and then
// repeatedly biases one fractional variable toward an integral value
// and resolves the relaxation, until the relaxation leaves optimality,
// no fractional candidate remains, or the termination policy fires.
// Candidate solutions discovered along the way are submitted to the
// relaxation's acceptance oracle.
//
// Whatever the outcome, every bound and objective coefficient touched
// during the call is restored before Dive returns.
func (h *Heuristic) Dive() (res Result, err error) {
	if h.diving {
		return NotRun, ErrDiveInProgress
	}
	switch h.rel.Status() {
	case Unsolved:
		// The node relaxation is not available yet: retry this node later.
		return Delayed, nil
	case Optimal:
	default:
		return NotRun, nil
	}
	if !h.rel.IsBasic() {
		return NotRun, nil
	}
	if h.rel.Node() == h.lastNode {
		return NotRun, nil
	}
	depth := float64(h.rel.Depth())
	maxDepth := float64(h.rel.MaxDepth())
	if depth < h.cfg.MinRelDepth*maxDepth || depth > h.cfg.MaxRelDepth*maxDepth {
		return NotRun, nil
	}
	allowed, ok := h.budget.allowance(h.cfg.MaxIterQuot, h.rel.NodeIterations(), h.Stats.NbCalls, h.Stats.NbSolsFound)
	if !ok {
		return NotRun, nil
	}

	sess, err := openSession(h.rel)
	if err != nil {
		return NotRun, err
	}
	h.diving = true
	defer func() {
		h.diving = false
		if cerr := sess.close(); cerr != nil && err == nil {
			res, err = NoSolution, cerr
		}
	}()
	h.lastNode = h.rel.Node()
	h.Stats.NbCalls++

	fac := h.cfg.DepthFac
	if !h.rel.HasIncumbent() {
		fac = h.cfg.DepthFacNoSol
	}
	maxDiveDepth := int(fac * float64(h.rel.NBinaries()+h.rel.NIntegers()))

	marks := make([]roundMark, h.rel.NVars())
	cands := h.rel.Candidates()
	startFrac := len(cands)
	if h.Verbose {
		fmt.Printf("c diving at node %d: %d fractional variables, %d iterations allowed\n",
			h.lastNode, startFrac, h.budget.remaining(allowed))
	}

	res = NoSolution
	iter := 0
	for h.rel.Status() == Optimal && len(cands) > 0 {
		sel, ok := selectCandidate(h.rel, cands, marks)
		if !ok {
			break
		}
		iter++
		if sel.allRoundable {
			// The whole pool can be rounded: try to cash in a solution
			// before perturbing anything. Failure does not end the dive.
			accepted, rerr := h.tryRound(cands)
			if rerr != nil {
				return NoSolution, rerr
			}
			if accepted {
				res = FoundSolution
				h.Stats.NbSolsFound++
			}
		}
		v := sel.cand.Var
		if marks[v] != unmarked {
			// The variable was already soft-rounded once this call.
			// Force convergence with a hard bound instead of oscillating.
			if sel.dir == Down {
				sess.setUpperBound(v, math.Floor(sel.cand.Value))
			} else {
				sess.setLowerBound(v, math.Ceil(sel.cand.Value))
			}
			h.Stats.NbHardEdits++
		} else {
			scale := float64(iter) * softObjScale
			coef := h.rel.ObjCoef(v) * scale
			if sel.dir == Down {
				// Penalize moving up: the coefficient must be at least +scale.
				if coef < scale {
					coef = scale
				}
				marks[v] = markedDown
			} else {
				if coef > -scale {
					coef = -scale
				}
				marks[v] = markedUp
			}
			sess.setObjCoef(v, coef)
			h.Stats.NbSoftEdits++
		}
		used, rerr := h.rel.Resolve(h.budget.remaining(allowed))
		h.budget.charge(used)
		h.Stats.NbResolves++
		h.Stats.NbIterations += used
		if rerr != nil {
			return NoSolution, errors.Wrapf(rerr, "dive: resolve at depth %d", iter)
		}
		cands = h.rel.Candidates()
		if h.Verbose {
			fmt.Printf("c dive depth %3d: var x%d %s, %d fractional variables left\n",
				iter, v, sel.dir, len(cands))
		}
		if !sel.allRoundable &&
			iter >= minDiveIterations &&
			len(cands) > startFrac-iter/2 &&
			!(iter < maxDiveDepth && h.budget.consumed < allowed) {
			break
		}
	}

	if h.rel.Status() == Optimal && len(cands) == 0 {
		// The relaxation converged to an integral point.
		accepted, rerr := h.tryRound(nil)
		if rerr != nil {
			return NoSolution, rerr
		}
		if accepted {
			res = FoundSolution
			h.Stats.NbSolsFound++
		}
	}
	if h.Verbose {
		fmt.Printf("c dive finished after %d iterations: %s\n", iter, res)
	}
	return res, nil
}
