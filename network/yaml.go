package network

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bayes/core"
	"github.com/katalvlaran/bayes/factor"
)

// yamlModel is the YAML document structure for a network definition.
type yamlModel struct {
	Variables []yamlVariable `yaml:"variables"`
	CPDs      []yamlCPD      `yaml:"cpds"`
}

// yamlVariable declares one variable: labeled states or a bare cardinality.
type yamlVariable struct {
	Name   string   `yaml:"name"`
	States []string `yaml:"states,omitempty"`
	Card   int      `yaml:"card,omitempty"`
}

// yamlCPD declares one node's conditional distribution as a flat row-major
// table over (parents..., variable).
type yamlCPD struct {
	Variable string    `yaml:"variable"`
	Parents  []string  `yaml:"parents,omitempty"`
	Table    []float64 `yaml:"table"`
}

// DecodeYAML parses a network definition document and builds the network,
// running the full Builder validation. Example document:
//
//	variables:
//	  - name: Rain
//	    states: [no, yes]
//	  - name: Sprinkler
//	    card: 2
//	cpds:
//	  - variable: Rain
//	    table: [0.8, 0.2]
//	  - variable: Sprinkler
//	    parents: [Rain]
//	    table: [0.6, 0.4, 0.99, 0.01]
func DecodeYAML(data []byte) (*Network, error) {
	var doc yamlModel
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if len(doc.Variables) == 0 {
		return nil, fmt.Errorf("%w: no variables", ErrBadDocument)
	}

	// 1. Materialize the variable arena.
	vars := make(map[string]core.Variable, len(doc.Variables))
	for _, yv := range doc.Variables {
		var (
			v   core.Variable
			err error
		)
		switch {
		case len(yv.States) > 0:
			v, err = core.NewEnumerated(yv.Name, yv.States...)
		default:
			v, err = core.NewVariable(yv.Name, yv.Card)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: variable %q: %v", ErrBadDocument, yv.Name, err)
		}
		vars[v.Name] = v
	}

	// 2. Build CPDs and hand everything to the Builder.
	b := NewBuilder()
	for _, yc := range doc.CPDs {
		child, ok := vars[yc.Variable]
		if !ok {
			return nil, fmt.Errorf("%w: cpd for undeclared variable %q", ErrBadDocument, yc.Variable)
		}
		parents := make([]core.Variable, len(yc.Parents))
		for i, name := range yc.Parents {
			p, ok := vars[name]
			if !ok {
				return nil, fmt.Errorf("%w: cpd of %q names undeclared parent %q", ErrBadDocument, yc.Variable, name)
			}
			parents[i] = p
		}
		cpd, err := factor.NewCPD(child, parents, yc.Table)
		if err != nil {
			return nil, fmt.Errorf("%w: cpd of %q: %v", ErrBadDocument, yc.Variable, err)
		}
		b.Add(child, yc.Parents, cpd)
	}
	if len(doc.CPDs) != len(doc.Variables) {
		return nil, fmt.Errorf("%w: %d variables but %d cpds", ErrBadDocument, len(doc.Variables), len(doc.CPDs))
	}

	return b.Build()
}

// EncodeYAML serializes a network to the document format DecodeYAML reads.
// Nodes are emitted in topological order, so a round trip is stable.
func EncodeYAML(n *Network) ([]byte, error) {
	doc := yamlModel{
		Variables: make([]yamlVariable, 0, n.Len()),
		CPDs:      make([]yamlCPD, 0, n.Len()),
	}
	for _, v := range n.TopologicalOrder() {
		yv := yamlVariable{Name: v.Name}
		if len(v.States) > 0 {
			yv.States = v.States
		} else {
			yv.Card = v.Card
		}
		doc.Variables = append(doc.Variables, yv)

		cpd, err := n.CPD(v.Name)
		if err != nil {
			return nil, err
		}
		// Emit parents in CPD scope order so the table layout survives the
		// round trip even if the node declared its parents differently.
		scope := cpd.Scope()
		names := make([]string, len(scope)-1)
		for i, p := range scope[:len(scope)-1] {
			names[i] = p.Name
		}
		doc.CPDs = append(doc.CPDs, yamlCPD{Variable: v.Name, Parents: names, Table: cpd.Values()})
	}

	return yaml.Marshal(&doc)
}
