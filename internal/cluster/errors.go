package cluster

import "errors"

var (
	// ErrInvalidParameter reports a malformed input: k outside [1, n],
	// too few points, or a negative or non-finite weight.
	ErrInvalidParameter = errors.New("cluster: invalid parameter")

	// ErrInsufficientData reports that the optimal-k search has no
	// candidate k to evaluate.
	ErrInsufficientData = errors.New("cluster: insufficient data")

	// ErrDegenerateInput reports a cluster whose total weight is zero,
	// leaving its weighted centroid undefined.
	ErrDegenerateInput = errors.New("cluster: degenerate input")
)
