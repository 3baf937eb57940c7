package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateKnownValues(t *testing.T) {
	// Distances to the shared centroid are 3 and 5: mean 4, population
	// standard deviation 1.
	result := &Result{
		Points: []Point{
			{ID: 0, X: 3, Y: 0, Weight: 100, Cluster: 0},
			{ID: 1, X: 0, Y: 5, Weight: 200, Cluster: 0},
		},
		Centroids: []Centroid{{ID: 0, X: 0, Y: 0}},
	}
	metrics := Aggregate(result)
	assert.InDelta(t, 4.0, metrics.AvgDistance, 1e-12)
	assert.InDelta(t, 5.0, metrics.MaxDistance, 1e-12)
	assert.InDelta(t, 3.0, metrics.MinDistance, 1e-12)
	assert.InDelta(t, 1.0, metrics.StdDistance, 1e-12)
	assert.Equal(t, map[int]int{0: 2}, metrics.CountsPerCluster)
}

func TestAggregateCountsEmptyClusters(t *testing.T) {
	result := &Result{
		Points: []Point{
			{ID: 0, X: 0, Y: 0, Cluster: 0},
			{ID: 1, X: 1, Y: 1, Cluster: 2},
		},
		Centroids: []Centroid{
			{ID: 0, X: 0, Y: 0},
			{ID: 1, X: 50, Y: 50},
			{ID: 2, X: 1, Y: 1},
		},
	}
	metrics := Aggregate(result)
	assert.Equal(t, map[int]int{0: 1, 1: 0, 2: 1}, metrics.CountsPerCluster)
}

func TestAggregateCountsSumToPointCount(t *testing.T) {
	result, err := KMeans(twoTriples(), 2, 7, Options{})
	require.NoError(t, err)
	metrics := Aggregate(result)

	total := 0
	for _, c := range metrics.CountsPerCluster {
		total += c
	}
	assert.Equal(t, len(result.Points), total)
	assert.Len(t, metrics.CountsPerCluster, len(result.Centroids))
	assert.GreaterOrEqual(t, metrics.MinDistance, 0.0)
	assert.GreaterOrEqual(t, metrics.MaxDistance, metrics.AvgDistance)
	assert.GreaterOrEqual(t, metrics.AvgDistance, metrics.MinDistance)
}
