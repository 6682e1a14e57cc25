package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for variable and assignment operations.
var (
	// ErrEmptyName indicates a variable was declared with an empty name.
	ErrEmptyName = errors.New("core: variable name is empty")

	// ErrBadCardinality indicates a domain with fewer than one state.
	ErrBadCardinality = errors.New("core: cardinality must be at least 1")

	// ErrStateOutOfRange indicates a state index outside a variable's domain.
	ErrStateOutOfRange = errors.New("core: state index out of range")
)

// Variable is a discrete random variable: a unique name plus a finite,
// ordered domain of states. The zero value is not a valid Variable; use
// NewVariable or NewEnumerated.
type Variable struct {
	// Name uniquely identifies the variable within a model.
	Name string

	// Card is the number of states in the domain (>= 1).
	Card int

	// States holds optional human-readable labels, one per state.
	// Empty for variables built with NewVariable.
	States []string
}

// NewVariable constructs a discrete Variable with card anonymous states.
// Returns ErrEmptyName or ErrBadCardinality on invalid input.
func NewVariable(name string, card int) (Variable, error) {
	if name == "" {
		return Variable{}, ErrEmptyName
	}
	if card < 1 {
		return Variable{}, fmt.Errorf("%w: %q has cardinality %d", ErrBadCardinality, name, card)
	}

	return Variable{Name: name, Card: card}, nil
}

// NewBinary constructs a two-state Variable. It is a convenience for the
// most common domain and never fails on a non-empty name.
func NewBinary(name string) (Variable, error) {
	return NewVariable(name, 2)
}

// NewEnumerated constructs a Variable whose states carry the given labels,
// in order. The cardinality is len(states).
func NewEnumerated(name string, states ...string) (Variable, error) {
	if name == "" {
		return Variable{}, ErrEmptyName
	}
	if len(states) < 1 {
		return Variable{}, fmt.Errorf("%w: %q has no states", ErrBadCardinality, name)
	}
	labels := make([]string, len(states))
	copy(labels, states)

	return Variable{Name: name, Card: len(states), States: labels}, nil
}

// StateIndex resolves a state label to its index. Returns ErrStateOutOfRange
// if the label is not in the domain (or the variable has anonymous states).
func (v Variable) StateIndex(label string) (int, error) {
	for i, s := range v.States {
		if s == label {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q is not a state of %q", ErrStateOutOfRange, label, v.Name)
}

// StateLabel returns the label of state i, or its decimal form for anonymous
// domains. Returns ErrStateOutOfRange for an invalid index.
func (v Variable) StateLabel(i int) (string, error) {
	if i < 0 || i >= v.Card {
		return "", fmt.Errorf("%w: %d for %q (card %d)", ErrStateOutOfRange, i, v.Name, v.Card)
	}
	if len(v.States) == 0 {
		return fmt.Sprintf("%d", i), nil
	}

	return v.States[i], nil
}

// Valid reports whether state index i falls inside the domain.
func (v Variable) Valid(i int) bool {
	return i >= 0 && i < v.Card
}
