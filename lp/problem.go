package lp

import "github.com/pkg/errors"

// A Variable is one column of a problem.
type Variable struct {
	Name    string
	Lower   float64 // Lower bound
	Upper   float64 // Upper bound
	Obj     float64 // Objective coefficient
	Integer bool    // True iff the variable is integer-constrained
}

// IsBinary is true iff the variable is an integer variable whose
// bounds fit inside [0, 1].
func (v Variable) IsBinary() bool {
	return v.Integer && v.Lower >= 0 && v.Upper <= 1
}

// A Constraint is one row of a problem, of the form coefs·x <= rhs.
// Rows of other senses are normalized to this form when the problem is
// built.
type Constraint struct {
	Name  string
	Coefs []float64 // Dense coefficients, one per variable
	RHS   float64
}

// A Problem is a linear minimization problem over bounded variables,
// some of which may be integer-constrained.
type Problem struct {
	Name    string
	Vars    []Variable
	Constrs []Constraint
}

// AddVariable appends a variable and returns its index.
func (p *Problem) AddVariable(v Variable) int {
	p.Vars = append(p.Vars, v)
	return len(p.Vars) - 1
}

// AddConstraint appends a row. The number of coefficients must match
// the number of variables added so far.
func (p *Problem) AddConstraint(c Constraint) error {
	if len(c.Coefs) != len(p.Vars) {
		return errors.Errorf("lp: constraint %q has %d coefficients, want %d", c.Name, len(c.Coefs), len(p.Vars))
	}
	p.Constrs = append(p.Constrs, c)
	return nil
}

// Objective evaluates the problem objective at the given point.
func (p *Problem) Objective(vals []float64) float64 {
	var obj float64
	for j, v := range p.Vars {
		obj += v.Obj * vals[j]
	}
	return obj
}
