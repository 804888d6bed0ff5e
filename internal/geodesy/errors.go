package geodesy

import "fmt"

func unitsErr(u Unit) error {
	return fmt.Errorf("%w: %q", ErrUnrecognizedUnits, u)
}

func shapeErr(a, b int) error {
	return fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, a, b)
}
