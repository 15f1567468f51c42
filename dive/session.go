package dive

import "github.com/pkg/errors"

// ErrDiveInProgress is returned when Dive is invoked while a previous
// dive session on the same heuristic instance is still open.
var ErrDiveInProgress = errors.New("dive: session already open")

type editKind byte

const (
	objEdit editKind = iota
	lowerEdit
	upperEdit
)

// An edit records the pre-dive value of one touched coefficient or
// bound so it can be restored when the session closes.
type edit struct {
	kind editKind
	v    int
	old  float64
}

// A session brackets all temporary bound and objective overrides
// applied to the relaxation during one dive. Every write the engine
// performs goes through the session, which captures the baseline of
// each touched value on the way in. close restores the baselines in
// reverse order, so the relaxation is left exactly as it was found no
// matter how the dive ended.
type session struct {
	rel   Relaxation
	edits []edit
	open  bool
}

func openSession(rel Relaxation) (*session, error) {
	if err := rel.StartDive(); err != nil {
		return nil, errors.Wrap(err, "dive: opening session")
	}
	return &session{rel: rel, open: true}, nil
}

func (s *session) setObjCoef(v int, coef float64) {
	s.edits = append(s.edits, edit{objEdit, v, s.rel.ObjCoef(v)})
	s.rel.SetObjCoef(v, coef)
}

func (s *session) setLowerBound(v int, bound float64) {
	s.edits = append(s.edits, edit{lowerEdit, v, s.rel.LowerBound(v)})
	s.rel.SetLowerBound(v, bound)
}

func (s *session) setUpperBound(v int, bound float64) {
	s.edits = append(s.edits, edit{upperEdit, v, s.rel.UpperBound(v)})
	s.rel.SetUpperBound(v, bound)
}

// close rolls back every recorded edit and ends the dive scope.
// Calling close on an already closed session is a no-op.
func (s *session) close() error {
	if !s.open {
		return nil
	}
	for i := len(s.edits) - 1; i >= 0; i-- {
		e := s.edits[i]
		switch e.kind {
		case objEdit:
			s.rel.SetObjCoef(e.v, e.old)
		case lowerEdit:
			s.rel.SetLowerBound(e.v, e.old)
		case upperEdit:
			s.rel.SetUpperBound(e.v, e.old)
		}
	}
	s.edits = s.edits[:0]
	s.open = false
	return errors.Wrap(s.rel.EndDive(), "dive: closing session")
}
