// Package matrix provides the integer exponent matrix used by polygen.
//
// What & Why:
//
//	A polynomial with m monomials over n variables is described by an m×n
//	matrix K of non-negative integers, K[i][j] being the exponent of x_{j+1}
//	in monomial i. Dense stores K row-major in a flat slice, bounds-checks
//	every public accessor and refuses negative entries, so every value that
//	reaches the generator's repair phase is a valid exponent vector.
//
//	Besides storage the package offers the aggregates the generator relies
//	on: row sums (total degrees), column sums (variable coverage), canonical
//	row Keys with a Multiset for duplicate detection, and Transfer, the only
//	mutation repair performs (one unit moves between two columns of a row, so
//	the row sum is invariant).
//
// Complexity:
//
//	At, Set and Transfer run in O(1); Row, RowSum and RowKey in O(n);
//	RowSums, ColSums, Patterns and Clone in O(m*n).
package matrix
