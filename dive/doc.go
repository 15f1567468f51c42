/*
Package dive implements objective pseudocost diving, a primal heuristic
for mixed-integer programs.

Diving repeatedly perturbs and resolves the linear relaxation of a
problem to drive fractional integer variables toward integral values,
without ever touching the global branch-and-bound tree. On each
iteration the engine picks one fractional variable, biases the
relaxation toward a rounding direction for it (either softly, by
scaling its objective coefficient, or hard, by tightening a bound),
resolves the relaxation under an iteration cap, and checks whether an
integer-feasible solution fell out along the way.

The engine never talks to a concrete LP solver. It depends on the
Relaxation interface, a capability view of the relaxation and
search-tree subsystem: status and basis queries, fractional candidate
enumeration, pseudocost estimates, scoped bound/objective edits, and
solution submission. Any implementation of that interface can be dived
on; package lp provides a self-contained one used by the tests and the
command-line driver.

Running the heuristic:

	h := dive.New(rel, dive.DefaultConfig())
	result, err := h.Dive()

Dive returns one of NotRun, Delayed, NoSolution or FoundSolution.
Every temporary edit applied to the relaxation during the call is
rolled back before Dive returns, on success and on error alike:
accepted solutions are handed to the relaxation's acceptance oracle
and are the only durable effect of a dive.

The iteration budget is self-tuning: each call receives an allowance
derived from the global LP iteration count and the heuristic's own
success rate, and iterations spent diving are charged against the
instance for its whole lifetime.
*/
package dive
