// Package dataset produces synthetic neighborhood layouts for exercising the
// placement engine without real census data.
package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/oho/hospital-planner-daemon/internal/cluster"
)

const (
	// densityFoci is the number of population centers neighborhoods gather
	// around.
	densityFoci = 5

	// baseDispersionFraction scales how far neighborhoods scatter from
	// their focus, as a fraction of the plane size.
	baseDispersionFraction = 0.45

	// populationMu and populationSigma parameterize the log-normal draw
	// for neighborhood populations.
	populationMu    = 7.0
	populationSigma = 1.0

	minPopulation = 50
	maxPopulation = 50000
)

// fociProportions skews how many neighborhoods each focus attracts, so the
// layout has dense urban cores next to sparse outskirts.
var fociProportions = [densityFoci]float64{2.0, 0.5, 1.5, 0.7, 1.3}

// Generate lays out n weighted neighborhoods on a square plane of the given
// size. Points cluster around a handful of density foci with focus-dependent
// spread, and populations follow a clamped log-normal distribution. The same
// seed always yields the same layout.
func Generate(n int, planeSize float64, seed int64) ([]cluster.Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 neighborhoods, got %d", cluster.ErrInvalidParameter, n)
	}
	if planeSize <= 0 || math.IsNaN(planeSize) || math.IsInf(planeSize, 0) {
		return nil, fmt.Errorf("%w: plane size must be positive, got %v", cluster.ErrInvalidParameter, planeSize)
	}

	rng := rand.New(rand.NewSource(seed))

	foci := make([][2]float64, densityFoci)
	for i := range foci {
		foci[i] = [2]float64{rng.Float64() * planeSize, rng.Float64() * planeSize}
	}

	var total float64
	for _, p := range fociProportions {
		total += p
	}
	weights := make([]float64, densityFoci)
	cumulative := make([]float64, densityFoci)
	var acc float64
	for i, p := range fociProportions {
		weights[i] = p / total
		acc += weights[i]
		cumulative[i] = acc
	}

	baseDispersion := baseDispersionFraction * planeSize

	points := make([]cluster.Point, n)
	for i := 0; i < n; i++ {
		f := pickFocus(rng.Float64(), cumulative)

		// Denser foci scatter slightly less than sparse ones.
		dispersion := baseDispersion * (1.05 - weights[f])

		x := clamp(foci[f][0]+dispersion*rng.NormFloat64(), 0, planeSize)
		y := clamp(foci[f][1]+dispersion*rng.NormFloat64(), 0, planeSize)

		population := math.Exp(populationMu + populationSigma*rng.NormFloat64())
		population = clamp(population, minPopulation, maxPopulation)

		points[i] = cluster.Point{ID: i, X: x, Y: y, Weight: population}
	}
	return points, nil
}

// pickFocus maps a uniform draw onto the cumulative focus proportions.
func pickFocus(u float64, cumulative []float64) int {
	for i, c := range cumulative {
		if u <= c {
			return i
		}
	}
	return len(cumulative) - 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
