package libbbb

// This file is only for test purpose and is only loaded by test framework.

// MarshalPresentations returns the modules body of the given presentations for test purpose.
func MarshalPresentations(presentations []Presentation) ([]byte, error) {
	return marshalPresentations(presentations)
}
