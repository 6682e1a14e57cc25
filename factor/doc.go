// Package factor implements dense table factors over discrete variables and
// the algebra that probabilistic inference is built from.
//
// 🚀 What is a factor?
//
//	A factor maps every joint state of its scope (an ordered list of
//	variables) to a non-negative real number. Conditional probability
//	distributions, joint distributions, and every intermediate object of
//	variable elimination are factors; only their normalization differs.
//
// ✨ Operations (all pure - every call returns a fresh Factor):
//   - Product     — generalized outer product / natural join (K&F 4.2.1)
//   - Divide      — factor division with 0/0 := 0 (K&F 10.3.1)
//   - Marginalize — sum a variable out of the scope (K&F 9.3.1)
//   - Reduce      — slice the table by observed evidence (K&F 4.2.3)
//   - Normalize   — rescale to total mass 1, rejecting degenerate factors
//
// Layout:
//
//	The table is a flat []float64 in row-major order over the scope: the
//	last scope variable varies fastest. A CPD built with NewCPD places the
//	conditioned child last, so each contiguous block of Child.Card entries
//	is one conditional distribution and sums to 1 (within CPDEpsilon).
//
// Numeric contract:
//
//	Entries are finite and non-negative; structural zeros are legal and
//	never produce NaN (division guards the denominator, normalization
//	rejects all-zero mass with ErrZeroMass instead of dividing).
//
// Complexity: every operation is linear in the size of the produced table,
// which is the product of the scope cardinalities - exponential in scope
// width, as inherent to exact discrete inference.
package factor
