// Package core defines the central Variable and Assignment types shared by
// every other package in bayes.
//
// A Variable is a named discrete quantity with a finite, ordered domain of
// states. States are addressed by index (0..Cardinality-1); an optional list
// of state labels makes domains self-describing in model files and examples.
//
// An Assignment maps variable names to state indices. Assignments carry
// evidence into inference calls, come back out of samplers as particles, and
// form the records of an estimation dataset. They are plain value maps with
// no hidden state; Clone gives an independent copy.
//
// Variables are immutable once created and are compared by name: two
// variables with the same name denote the same quantity, and a network never
// admits two variables with the same name.
//
// Errors:
//
//	ErrEmptyName       - variable name is the empty string.
//	ErrBadCardinality  - domain has fewer than one state.
//	ErrStateOutOfRange - a state index is outside a variable's domain.
package core
