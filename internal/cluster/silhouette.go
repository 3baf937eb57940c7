package cluster

import "math"

// SilhouetteReport holds per-point silhouette coefficients keyed by point ID
// and their arithmetic mean. Scores lie in [-1, 1].
type SilhouetteReport struct {
	PerPoint map[int]float64
	Mean     float64
}

// Silhouette computes silhouette coefficients for a completed clustering.
//
// For a point p in cluster C, a is the mean distance from p to the other
// members of C and b is the smallest mean distance from p to any other
// non-empty cluster; the score is (b-a)/max(a,b). Points alone in their
// cluster score 0, and with fewer than two non-empty clusters the silhouette
// is undefined, so every score and the mean are 0 by convention. That covers
// both k=1 and k=n.
//
// This is an O(n²) computation; it dominates the optimal-k search and is the
// reason callers bound n (see config.MaxNeighborhoods).
func Silhouette(result *Result) *SilhouetteReport {
	pts := result.Points
	n := len(pts)
	report := &SilhouetteReport{PerPoint: make(map[int]float64, n)}
	if n == 0 {
		return report
	}

	counts := make([]int, len(result.Centroids))
	for _, p := range pts {
		counts[p.Cluster]++
	}
	nonEmpty := 0
	for _, c := range counts {
		if c > 0 {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		for _, p := range pts {
			report.PerPoint[p.ID] = 0
		}
		return report
	}

	var total float64
	sums := make([]float64, len(result.Centroids))
	for i := range pts {
		for j := range sums {
			sums[j] = 0
		}
		for j := range pts {
			if i == j {
				continue
			}
			sums[pts[j].Cluster] += Distance(pts[i].X, pts[i].Y, pts[j].X, pts[j].Y)
		}

		own := pts[i].Cluster
		var a float64
		if counts[own] > 1 {
			a = sums[own] / float64(counts[own]-1)
		}

		b := math.Inf(1)
		for c, cnt := range counts {
			if c == own || cnt == 0 {
				continue
			}
			if mean := sums[c] / float64(cnt); mean < b {
				b = mean
			}
		}

		var score float64
		switch {
		case math.IsInf(b, 1):
			// No other non-empty cluster to compare against.
		case a == 0:
			// Singleton cluster.
		case math.Max(a, b) > 0:
			score = (b - a) / math.Max(a, b)
		}

		report.PerPoint[pts[i].ID] = score
		total += score
	}

	report.Mean = total / float64(n)
	return report
}
