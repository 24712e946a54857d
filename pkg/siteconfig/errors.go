package siteconfig

// ShapeError reports that construction inputs failed shape validation.
// All field problems are aggregated so a single build run surfaces every
// configuration mistake at once.
type ShapeError struct {
	err error
}

func (e *ShapeError) Error() string {
	return "invalid site configuration: " + e.err.Error()
}

// Unwrap exposes the aggregated field errors for errors.Is/errors.As.
func (e *ShapeError) Unwrap() error {
	return e.err
}
