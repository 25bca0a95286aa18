// Package registry provides a generic, type-safe registry for managing
// named items such as operator factories and predicates. It supports
// automatic registration through init() functions.
package registry
