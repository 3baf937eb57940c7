package cluster

import (
	"fmt"
	"math"
)

// Distance computes the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(SquaredDistance(x1, y1, x2, y2))
}

// SquaredDistance computes the squared Euclidean distance between two
// coordinates. Assignment and SSE work on squared distances to avoid the
// square root where the ordering is all that matters.
func SquaredDistance(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// WeightedCentroid computes the population-weighted mean position of points.
// It returns ErrDegenerateInput when the total weight is zero so callers can
// detect malformed weight data instead of silently substituting an
// unweighted mean.
func WeightedCentroid(points []Point) (x, y float64, err error) {
	if len(points) == 0 {
		return 0, 0, fmt.Errorf("%w: weighted centroid of empty point set", ErrDegenerateInput)
	}
	var sumW, sumX, sumY float64
	for _, p := range points {
		sumW += p.Weight
		sumX += p.Weight * p.X
		sumY += p.Weight * p.Y
	}
	if sumW == 0 {
		return 0, 0, fmt.Errorf("%w: total weight is zero", ErrDegenerateInput)
	}
	return sumX / sumW, sumY / sumW, nil
}
