package cluster

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultKMax caps the optimal-k search range.
	DefaultKMax = 10

	// SweepMaxIterations is the reduced per-candidate iteration budget used
	// during the search, bounding its total cost.
	SweepMaxIterations = 50
)

// SelectorOptions tune the optimal-k search. Zero values fall back to the
// defaults: k in [2, min(10, n/3)] with a 50-iteration budget per candidate.
type SelectorOptions struct {
	KMin          int
	KMax          int
	MaxIterations int
}

// Selection is the winning candidate of an optimal-k search. Result is the
// clustering produced for K, so callers need not re-run the engine.
type Selection struct {
	K      int
	Result *Result
	Score  float64
}

// SelectOptimalK sweeps candidate cluster counts, scores each clustering
// with the mean silhouette, and returns the best-scoring candidate. Ties
// resolve to the smaller k, preferring simpler models.
//
// Candidates are evaluated concurrently: each candidate is an independent
// engine run from the same seed, so parallelism cannot perturb the result.
// Returns ErrInsufficientData when the point set is too small to evaluate
// any candidate.
func SelectOptimalK(points []Point, seed int64, opts SelectorOptions) (*Selection, error) {
	n := len(points)

	kMin := opts.KMin
	if kMin <= 0 {
		kMin = 2
	}
	kMax := opts.KMax
	if kMax <= 0 {
		kMax = n / 3
		if kMax > DefaultKMax {
			kMax = DefaultKMax
		}
	}
	if kMax > n {
		kMax = n
	}
	if kMax < kMin {
		return nil, fmt.Errorf("%w: %d points is too few to evaluate any k in [%d, %d]",
			ErrInsufficientData, n, kMin, kMax)
	}

	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = SweepMaxIterations
	}

	candidates := make([]Selection, kMax-kMin+1)
	var g errgroup.Group
	for k := kMin; k <= kMax; k++ {
		k := k
		g.Go(func() error {
			result, err := KMeans(points, k, seed, Options{MaxIterations: maxIter})
			if err != nil {
				return err
			}
			report := Silhouette(result)
			candidates[k-kMin] = Selection{K: k, Result: result, Score: report.Mean}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		// Strictly greater keeps ties on the smaller k.
		if c.Score > best.Score {
			best = c
		}
	}
	return &best, nil
}
