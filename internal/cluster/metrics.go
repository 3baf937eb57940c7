package cluster

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FitMetrics summarizes point-to-own-centroid distances and per-cluster
// population counts for a completed clustering.
type FitMetrics struct {
	AvgDistance      float64
	MaxDistance      float64
	MinDistance      float64
	StdDistance      float64
	CountsPerCluster map[int]int
}

// Aggregate derives fit metrics from a completed clustering. The standard
// deviation is the population form. Counts include zero entries for empty
// clusters, and always sum to the point count.
func Aggregate(result *Result) *FitMetrics {
	counts := make(map[int]int, len(result.Centroids))
	for _, c := range result.Centroids {
		counts[c.ID] = 0
	}

	distances := make([]float64, len(result.Points))
	for i, p := range result.Points {
		c := result.Centroids[p.Cluster]
		distances[i] = Distance(p.X, p.Y, c.X, c.Y)
		counts[p.Cluster]++
	}

	metrics := &FitMetrics{CountsPerCluster: counts}
	if len(distances) == 0 {
		return metrics
	}

	metrics.AvgDistance = stat.Mean(distances, nil)
	metrics.StdDistance = stat.PopStdDev(distances, nil)
	metrics.MinDistance = floats.Min(distances)
	metrics.MaxDistance = floats.Max(distances)
	return metrics
}
