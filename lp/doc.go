/*
Package lp provides a small linear problem model and a deterministic
bound relaxation of it that implements dive.Relaxation.

The relaxation is deliberately simple: every variable sits at its
cheaper working bound under the minimizing objective, so a solve is a
single pass over the columns and is exactly reproducible. Constraint
rows are not enforced during a solve; they are used to decide whether
a fractional variable may be rounded without losing feasibility, and
to check candidate solutions on submission. That is enough structure
to exercise the whole diving engine end to end: soft objective
perturbations move variables between their bounds, hard bound
tightenings make them integral, and the acceptance check can still
reject a rounding that violates a row.

A full LP solver can replace this package behind the same interface;
nothing in package dive knows the difference.

Problems can be built programmatically or read from a JSON file:

	pb, err := lp.ParseFile("model.json")
	rel := lp.NewRelaxation(pb)
	if err := rel.Solve(); err != nil { ... }
	h := dive.New(rel, dive.DefaultConfig())
	result, err := h.Dive()
*/
package lp
