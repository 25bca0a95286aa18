// Package ruleset loads declarative rule trees from YAML or TOML files.
//
// A ruleset maps rule names to trees over named predicates and the
// registered operator kinds:
//
//	rules:
//	  valid-order:
//	    all:
//	      - not-nil
//	      - any: [is-list, is-map]
//
// String nodes resolve against the predicate registry first, then against
// sibling rules in the same set. Unknown names and reference cycles are
// rejected at load time.
package ruleset
