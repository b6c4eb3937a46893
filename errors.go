package contact

import "fmt"

// InvalidTableSize - Custom error to inform that a table was requested with fewer than one bucket
type InvalidTableSize struct {
	Size int64
}

// Error - Used to notify that the requested table size is not usable
func (E InvalidTableSize) Error() string {
	return fmt.Sprintf("table size must be a positive value higher than 0 (zero), got %d", E.Size)
}

// Is - Makes errors.Is(err, InvalidTableSize{}) match regardless of the offending size
func (E InvalidTableSize) Is(target error) bool {
	_, ok := target.(InvalidTableSize)
	return ok
}
