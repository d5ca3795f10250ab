// Package brand normalizes raw extraction signals into a canonical brand analysis.
package brand

import "fmt"

// InsufficientInputError is returned when there is too little text to analyze.
// It is the only extraction outcome that aborts a run.
type InsufficientInputError struct {
	Domain string
	Length int
}

func (e *InsufficientInputError) Error() string {
	return fmt.Sprintf("insufficient input for %s: %d characters of text, need at least %d", e.Domain, e.Length, MinTextLength)
}
