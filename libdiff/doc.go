// Package libdiff compares value trees, reporting changes by path.
package libdiff
