package dive

import "fmt"

// mockRelax is a scriptable relaxation used to test the engine without
// any LP machinery. Candidate pools are replayed in order: pools[0] is
// the pool before the first resolve, pools[k] the pool after the k-th.
// Every mutating call is appended to the event log so tests can assert
// ordering.
type mockRelax struct {
	status    Status
	basic     bool
	node      int64
	depth     int
	maxDepth  int
	nodeIters int64
	nBin      int
	nInt      int
	incumbent bool

	vals       []float64
	binary     []bool
	rootVals   []float64
	pscostDown []float64
	pscostUp   []float64
	obj        []float64
	lb         []float64
	ub         []float64

	pools         [][]Candidate
	resolves      int
	resolveIters  int64    // iterations a full resolve costs
	resolveLimits []int64  // limits passed to Resolve, in order
	statusAfter   []Status // status after resolve k (0 entries mean stay Optimal)
	failAt        int      // 1-based resolve index that fails; 0 means never
	failErr       error

	accept func(vals []float64) bool
	tries  [][]float64

	startDives int
	endDives   int
	log        []string

	queriedFracs map[int][]float64
}

func newMockRelax(nVars int) *mockRelax {
	return &mockRelax{
		status:       Optimal,
		basic:        true,
		node:         1,
		nBin:         nVars,
		vals:         make([]float64, nVars),
		binary:       make([]bool, nVars),
		rootVals:     make([]float64, nVars),
		pscostDown:   make([]float64, nVars),
		pscostUp:     make([]float64, nVars),
		obj:          make([]float64, nVars),
		lb:           make([]float64, nVars),
		ub:           make([]float64, nVars),
		resolveIters: 100,
		queriedFracs: make(map[int][]float64),
	}
}

func (m *mockRelax) Status() Status        { return m.status }
func (m *mockRelax) IsBasic() bool         { return m.basic }
func (m *mockRelax) Node() int64           { return m.node }
func (m *mockRelax) Depth() int            { return m.depth }
func (m *mockRelax) MaxDepth() int         { return m.maxDepth }
func (m *mockRelax) NodeIterations() int64 { return m.nodeIters }
func (m *mockRelax) NVars() int            { return len(m.vals) }
func (m *mockRelax) NBinaries() int        { return m.nBin }
func (m *mockRelax) NIntegers() int        { return m.nInt }
func (m *mockRelax) HasIncumbent() bool    { return m.incumbent }
func (m *mockRelax) IsBinary(v int) bool   { return m.binary[v] }

func (m *mockRelax) RootValue(v int) float64 { return m.rootVals[v] }

func (m *mockRelax) Pseudocost(v int, dir Direction, frac float64) float64 {
	m.queriedFracs[v] = append(m.queriedFracs[v], frac)
	if dir == Down {
		return m.pscostDown[v]
	}
	return m.pscostUp[v]
}

func (m *mockRelax) Candidates() []Candidate {
	if m.status != Optimal || m.resolves >= len(m.pools) {
		return nil
	}
	return m.pools[m.resolves]
}

func (m *mockRelax) StartDive() error {
	m.startDives++
	m.log = append(m.log, "start")
	return nil
}

func (m *mockRelax) EndDive() error {
	m.endDives++
	m.log = append(m.log, "end")
	return nil
}

func (m *mockRelax) ObjCoef(v int) float64 { return m.obj[v] }

func (m *mockRelax) SetObjCoef(v int, coef float64) {
	m.obj[v] = coef
	m.log = append(m.log, fmt.Sprintf("setobj x%d", v))
}

func (m *mockRelax) LowerBound(v int) float64 { return m.lb[v] }
func (m *mockRelax) UpperBound(v int) float64 { return m.ub[v] }

func (m *mockRelax) SetLowerBound(v int, bound float64) {
	m.lb[v] = bound
	m.log = append(m.log, fmt.Sprintf("setlb x%d", v))
}

func (m *mockRelax) SetUpperBound(v int, bound float64) {
	m.ub[v] = bound
	m.log = append(m.log, fmt.Sprintf("setub x%d", v))
}

func (m *mockRelax) Resolve(limit int64) (int64, error) {
	m.resolves++
	m.resolveLimits = append(m.resolveLimits, limit)
	m.log = append(m.log, "resolve")
	if m.failAt > 0 && m.resolves == m.failAt {
		return m.resolveIters, m.failErr
	}
	used := m.resolveIters
	if limit < used {
		m.status = IterLimit
		if limit < 0 {
			limit = 0
		}
		return limit, nil
	}
	if m.resolves-1 < len(m.statusAfter) {
		m.status = m.statusAfter[m.resolves-1]
	}
	return used, nil
}

func (m *mockRelax) Values(buf []float64) []float64 {
	if cap(buf) < len(m.vals) {
		buf = make([]float64, len(m.vals))
	}
	buf = buf[:len(m.vals)]
	copy(buf, m.vals)
	return buf
}

func (m *mockRelax) TrySolution(vals []float64) (bool, error) {
	snap := append([]float64(nil), vals...)
	m.tries = append(m.tries, snap)
	m.log = append(m.log, "try")
	if m.accept == nil {
		return false, nil
	}
	return m.accept(vals), nil
}
