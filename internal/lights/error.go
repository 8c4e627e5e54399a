package lights

import "fmt"

var (
	ErrInvalidSize = fmt.Errorf("invalid board size")
	ErrFormat      = fmt.Errorf("malformed bit rows")
	ErrChangeCount = fmt.Errorf("invalid number of random changes")
)

// AssertionError reports a broken solver invariant. It is panicked deep
// inside the search and recovered at the package boundary.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
