package dive

import "github.com/pkg/errors"

// tryRound builds a candidate solution from the current relaxation
// values and submits it to the acceptance oracle.
//
// On the opportunistic path (cands non-nil) each still-fractional
// candidate is snapped toward a feasible rounding direction first; if
// some candidate cannot be rounded in any direction the attempt is
// abandoned without a submission. On the terminal path the relaxation
// is already integral and the values are submitted as they are.
//
// The snapshot lives in a buffer reused across calls and is never
// retained after the submission, accepted or not.
func (h *Heuristic) tryRound(cands []Candidate) (accepted bool, err error) {
	h.solBuf = h.rel.Values(h.solBuf)
	for _, c := range cands {
		switch {
		case c.MayRoundDown && c.MayRoundUp:
			// Both directions are feasible: round to the nearest integer.
			if c.Frac < 0.5 {
				h.solBuf[c.Var] = c.Value - c.Frac
			} else {
				h.solBuf[c.Var] = c.Value - c.Frac + 1.0
			}
		case c.MayRoundDown:
			h.solBuf[c.Var] = c.Value - c.Frac
		case c.MayRoundUp:
			h.solBuf[c.Var] = c.Value - c.Frac + 1.0
		default:
			return false, nil
		}
	}
	accepted, err = h.rel.TrySolution(h.solBuf)
	if err != nil {
		return false, errors.Wrap(err, "dive: submitting solution")
	}
	return accepted, nil
}
