// Package hcl loads named integer sequences from HCL files. Each sequence is
// declared by a `tree` block whose `values` attribute is evaluated and
// converted to a list of whole numbers:
//
//	tree "demo" {
//	  values = [1, 2, 3, 4, 5, 6, 7]
//	}
//
//	tree "generated" {
//	  values = concat(range(1, 4), reverse([9, 8]))
//	}
//
// The expression language has no variables; only the functions registered in
// evalContext are available.
package hcl
