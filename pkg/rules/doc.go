// Package rules implements the rule dispatch core: deciding what kind of
// rule an arbitrary value represents and evaluating it against an input.
//
// A rule is any value accepted by a registered Kind. Three kinds ship with
// the package, consulted in this order:
//
//   - operator rules: values implementing Aggregable, evaluated by
//     recursively evaluating their clauses and folding the boolean
//     outcomes through the operator's Aggregator
//   - module rules: values implementing Evaluator
//   - func rules: plain single-argument functions such as func(any) bool
//
// Classification is first-match-wins over the registration order, so a
// value satisfying more than one kind always dispatches to the
// highest-priority one. Additional kinds are added with RegisterKind at
// startup; no change to the dispatcher is required.
//
// Evaluation is synchronous and pure. The dispatcher never retries,
// recovers, or translates failures: an error from a leaf rule reaches the
// caller unchanged.
package rules
