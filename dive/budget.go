package dive

// minIterations is both the offset added to the global iteration count
// when computing an allowance and the minimal useful allowance granted
// to a call that is not skipped.
const minIterations = 10000

// A budget tracks how many relaxation iterations the heuristic has
// spent over its lifetime. The consumed counter is the only engine
// state that survives between calls; it is reset only when the owning
// solve is reinitialized for a new problem.
type budget struct {
	consumed int64
}

// allowance computes the iteration allowance for one call.
//
// The raw allowance grows with the global node LP iteration count and
// with the heuristic's success rate: a heuristic that keeps finding
// solutions earns a bigger share. When the lifetime consumption
// already meets the raw allowance, ok is false and the call must be
// skipped before opening any session. Otherwise the allowance is
// floored to consumed+minIterations so that a call that does run can
// always make progress, even under a tight quotient.
func (b *budget) allowance(quot float64, nodeIters, calls, sols int64) (allowed int64, ok bool) {
	ratio := 1.0 + 10.0*float64(sols+1)/float64(calls+1)
	raw := int64(ratio * quot * float64(nodeIters+minIterations))
	if b.consumed >= raw {
		return 0, false
	}
	if raw < b.consumed+minIterations {
		raw = b.consumed + minIterations
	}
	return raw, true
}

// remaining is the number of iterations still usable under allowed.
func (b *budget) remaining(allowed int64) int64 {
	if b.consumed >= allowed {
		return 0
	}
	return allowed - b.consumed
}

// charge records iterations actually spent in a resolve.
func (b *budget) charge(iters int64) {
	b.consumed += iters
}

// reset clears the lifetime consumption for a new problem.
func (b *budget) reset() {
	b.consumed = 0
}
