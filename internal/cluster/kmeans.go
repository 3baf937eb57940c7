// Package cluster implements weighted k-means clustering for hospital
// placement: Lloyd's algorithm over weighted 2-D neighborhoods, silhouette
// scoring, an optimal-cluster-count search, and derived fit metrics.
//
// Every run is a pure function of its inputs and seed. There is no global
// random state; the pseudo-random stream is built from the seed on each
// call, so the same seed and point set always produce identical output.
package cluster

import (
	"fmt"
	"math"
	"math/rand"
)

// Point is a weighted 2-D neighborhood. Weight carries the population used
// in centroid computation; Cluster is assigned by KMeans.
type Point struct {
	ID      int     `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Weight  float64 `json:"weight"`
	Cluster int     `json:"cluster"`
}

// Centroid is a hospital placement. Centroid IDs are index-aligned with the
// cluster labels 0..k-1.
type Centroid struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Result is the outcome of a single engine run. It is not modified after
// KMeans returns.
type Result struct {
	Points     []Point
	Centroids  []Centroid
	Iterations int
	Converged  bool
	SSE        float64
}

const (
	// DefaultMaxIterations caps a single engine run.
	DefaultMaxIterations = 100

	// DefaultTolerance is the per-axis centroid movement below which a run
	// is considered converged.
	DefaultTolerance = 0.1
)

// Options tune a single engine run. Zero values fall back to the defaults.
type Options struct {
	MaxIterations int
	Tolerance     float64
}

// KMeans runs weighted Lloyd's algorithm on points for k clusters.
//
// Initial centroids are k distinct points sampled without replacement from a
// stream seeded with seed. Each iteration assigns every point to its nearest
// centroid (ties go to the lowest-indexed centroid) and recomputes each
// non-empty cluster's centroid as the weighted mean of its members. Empty
// clusters keep their previous centroid rather than being reseeded, so the
// result always reports exactly k centroids. The run stops once every
// centroid moved less than the tolerance on both axes, or after
// MaxIterations.
//
// SSE is unweighted: it measures geometric compactness regardless of
// population, while the weights steer centroid placement.
func KMeans(points []Point, k int, seed int64, opts Options) (*Result, error) {
	n := len(points)
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d must be in [1, %d]", ErrInvalidParameter, k, n)
	}
	for _, p := range points {
		if p.Weight < 0 || math.IsNaN(p.Weight) || math.IsInf(p.Weight, 0) {
			return nil, fmt.Errorf("%w: point %d has weight %v", ErrInvalidParameter, p.ID, p.Weight)
		}
	}

	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	tolerance := opts.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	rng := rand.New(rand.NewSource(seed))

	pts := make([]Point, n)
	copy(pts, points)

	centroids := make([]Centroid, k)
	for i, idx := range rng.Perm(n)[:k] {
		centroids[i] = Centroid{ID: i, X: pts[idx].X, Y: pts[idx].Y}
	}

	prev := make([]Centroid, k)
	iterations := 0
	converged := false

	for iter := 0; iter < maxIter; iter++ {
		assign(pts, centroids)

		copy(prev, centroids)
		if err := updateCentroids(pts, centroids); err != nil {
			return nil, err
		}
		iterations = iter + 1

		converged = true
		for j := range centroids {
			if math.Abs(centroids[j].X-prev[j].X) >= tolerance ||
				math.Abs(centroids[j].Y-prev[j].Y) >= tolerance {
				converged = false
				break
			}
		}
		if converged {
			break
		}
	}

	// Labels must pair with the reported centroids.
	assign(pts, centroids)

	var sse float64
	for _, p := range pts {
		c := centroids[p.Cluster]
		sse += SquaredDistance(p.X, p.Y, c.X, c.Y)
	}

	return &Result{
		Points:     pts,
		Centroids:  centroids,
		Iterations: iterations,
		Converged:  converged,
		SSE:        sse,
	}, nil
}

// assign labels every point with its nearest centroid. Ties go to the
// lowest-indexed centroid regardless of evaluation order.
func assign(points []Point, centroids []Centroid) {
	for i := range points {
		best := 0
		bestDist := SquaredDistance(points[i].X, points[i].Y, centroids[0].X, centroids[0].Y)
		for j := 1; j < len(centroids); j++ {
			d := SquaredDistance(points[i].X, points[i].Y, centroids[j].X, centroids[j].Y)
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		points[i].Cluster = best
	}
}

// updateCentroids recomputes every non-empty cluster's centroid as the
// weighted mean of its members. Empty clusters are left untouched.
func updateCentroids(points []Point, centroids []Centroid) error {
	members := make([][]Point, len(centroids))
	for _, p := range points {
		members[p.Cluster] = append(members[p.Cluster], p)
	}
	for j := range centroids {
		if len(members[j]) == 0 {
			continue
		}
		x, y, err := WeightedCentroid(members[j])
		if err != nil {
			return fmt.Errorf("cluster %d: %w", j, err)
		}
		centroids[j].X = x
		centroids[j].Y = y
	}
	return nil
}
