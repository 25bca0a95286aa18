// Package operators provides the built-in composite rule kinds All, Any
// and None, plus the Define builder used to add new operator kinds
// without touching the dispatcher.
package operators
