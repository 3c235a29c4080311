package engine

import (
	"fmt"
)

// TopN returns the first n groups of an already-sorted result.
// Results with fewer than n groups come back whole. The input is not modified.
func TopN(result AggregateResult, n int) (AggregateResult, error) {
	if n <= 0 {
		return result, fmt.Errorf("%w: top-n size must be positive, got %d", ErrInvalidArgument, n)
	}
	if len(result.Groups) <= n {
		return result, nil
	}
	out := result
	out.Groups = append([]Group(nil), result.Groups[:n]...)
	return out, nil
}
