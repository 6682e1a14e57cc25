package core

// Assignment maps variable names to state indices. It represents evidence,
// a sampled particle, or one record of an estimation dataset.
//
// An Assignment is an ordinary map value: callers that hand one to a
// long-lived consumer and keep mutating it should pass Clone().
type Assignment map[string]int

// NewAssignment returns an empty Assignment.
func NewAssignment() Assignment {
	return make(Assignment)
}

// Set records state index state for variable v. The index is not range
// checked here; consumers validate against the variable's domain at the
// model boundary.
func (a Assignment) Set(v string, state int) Assignment {
	a[v] = state

	return a
}

// Get returns the state index assigned to v and whether v is assigned.
func (a Assignment) Get(v string) (int, bool) {
	s, ok := a[v]

	return s, ok
}

// Has reports whether v is assigned.
func (a Assignment) Has(v string) bool {
	_, ok := a[v]

	return ok
}

// Unset removes v from the assignment.
func (a Assignment) Unset(v string) {
	delete(a, v)
}

// Clone returns an independent copy.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Without returns a copy with the listed variables removed.
func (a Assignment) Without(vars ...string) Assignment {
	out := a.Clone()
	for _, v := range vars {
		delete(out, v)
	}

	return out
}

// Covers reports whether every listed variable is assigned.
func (a Assignment) Covers(vars ...Variable) bool {
	for _, v := range vars {
		if _, ok := a[v.Name]; !ok {
			return false
		}
	}

	return true
}
