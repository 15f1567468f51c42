package lp

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Parse reads a problem from its JSON description. The expected shape:
//
//	{
//	  "name": "knapsack",
//	  "variables": [
//	    {"name": "x1", "lower": 0, "upper": 10, "obj": -3, "integer": true}
//	  ],
//	  "constraints": [
//	    {"name": "cap", "coefs": {"x1": 2}, "op": "<=", "rhs": 7}
//	  ]
//	}
//
// Bounds default to [0, +inf). Supported senses are "<=", ">=" and "=";
// rows are normalized to the <= form, an equality producing two rows.
func Parse(data []byte) (*Problem, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("lp: invalid JSON")
	}
	root := gjson.ParseBytes(data)
	pb := &Problem{Name: root.Get("name").String()}
	vars := root.Get("variables")
	if !vars.IsArray() || len(vars.Array()) == 0 {
		return nil, errors.New("lp: problem has no variables")
	}
	index := make(map[string]int)
	var parseErr error
	vars.ForEach(func(_, v gjson.Result) bool {
		name := v.Get("name").String()
		if name == "" {
			parseErr = errors.Errorf("lp: variable %d has no name", len(pb.Vars))
			return false
		}
		if _, dup := index[name]; dup {
			parseErr = errors.Errorf("lp: duplicate variable %q", name)
			return false
		}
		lower, upper := 0.0, math.Inf(1)
		if b := v.Get("lower"); b.Exists() {
			lower = b.Float()
		}
		if b := v.Get("upper"); b.Exists() {
			upper = b.Float()
		}
		if lower > upper {
			parseErr = errors.Errorf("lp: variable %q has empty domain [%g, %g]", name, lower, upper)
			return false
		}
		index[name] = pb.AddVariable(Variable{
			Name:    name,
			Lower:   lower,
			Upper:   upper,
			Obj:     v.Get("obj").Float(),
			Integer: v.Get("integer").Bool(),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	root.Get("constraints").ForEach(func(_, c gjson.Result) bool {
		name := c.Get("name").String()
		coefs := make([]float64, len(pb.Vars))
		c.Get("coefs").ForEach(func(k, v gjson.Result) bool {
			j, ok := index[k.String()]
			if !ok {
				parseErr = errors.Errorf("lp: constraint %q references unknown variable %q", name, k.String())
				return false
			}
			coefs[j] = v.Float()
			return true
		})
		if parseErr != nil {
			return false
		}
		rhs := c.Get("rhs").Float()
		switch op := c.Get("op").String(); op {
		case "<=":
			parseErr = pb.AddConstraint(Constraint{Name: name, Coefs: coefs, RHS: rhs})
		case ">=":
			parseErr = pb.AddConstraint(Constraint{Name: name, Coefs: negate(coefs), RHS: -rhs})
		case "=":
			if parseErr = pb.AddConstraint(Constraint{Name: name, Coefs: coefs, RHS: rhs}); parseErr == nil {
				parseErr = pb.AddConstraint(Constraint{Name: name, Coefs: negate(coefs), RHS: -rhs})
			}
		default:
			parseErr = errors.Errorf("lp: constraint %q has unsupported sense %q", name, op)
		}
		return parseErr == nil
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return pb, nil
}

// ParseFile reads a problem from a JSON file.
func ParseFile(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "lp: reading %s", path)
	}
	pb, err := Parse(data)
	return pb, errors.Wrapf(err, "lp: parsing %s", path)
}

func negate(coefs []float64) []float64 {
	neg := make([]float64, len(coefs))
	for i, c := range coefs {
		neg[i] = -c
	}
	return neg
}
