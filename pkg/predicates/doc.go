// Package predicates is a registry of named leaf rules. A handful of
// type-inspection predicates ship built in; callers register their own
// with Register, typically from init().
package predicates
