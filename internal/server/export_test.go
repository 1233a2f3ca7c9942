package server

// This file is only for test purpose and is only loaded by test framework.

// WellFormed returns true if s is a well-formed XML document.
func WellFormed(s string) bool {
	return wellFormed(s)
}
