package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oho/hospital-planner-daemon/internal/cluster"
	"github.com/oho/hospital-planner-daemon/internal/config"
	"github.com/oho/hospital-planner-daemon/internal/dataset"
)

type kmeansRequest struct {
	NumNeighborhoods int     `json:"num_neighborhoods"`
	NumHospitals     *int    `json:"num_hospitals"`
	PlaneSize        float64 `json:"plane_size"`
	Seed             *int64  `json:"seed"`
}

type metricsResponse struct {
	AvgDistance              float64     `json:"avg_distance"`
	MaxDistance              float64     `json:"max_distance"`
	MinDistance              float64     `json:"min_distance"`
	StdDistance              float64     `json:"std_distance"`
	NeighborhoodsPerHospital map[int]int `json:"neighborhoods_per_hospital"`
}

type kmeansResponse struct {
	Neighborhoods   []cluster.Point    `json:"neighborhoods"`
	Hospitals       []cluster.Centroid `json:"hospitals"`
	OptimalClusters int                `json:"optimal_clusters"`
	SSE             float64            `json:"sse"`
	SilhouetteScore float64            `json:"silhouette_score"`
	Iterations      int                `json:"iterations"`
	Metrics         metricsResponse    `json:"metrics"`
}

// placement is the outcome of one generate-and-cluster pipeline run, shared
// by the JSON and chart endpoints.
type placement struct {
	points    []cluster.Point
	result    *cluster.Result
	optimalK  int
	planeSize float64
	score     float64
}

// KMeansRouter serves the clustering endpoints.
func KMeansRouter(cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Post("/", handleKMeans(cfg))
	r.Get("/chart", handleChart(cfg))
	return r
}

func handleKMeans(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req kmeansRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := runPlacement(cfg, req)
		if err != nil {
			writeClusterError(w, err)
			return
		}

		metrics := cluster.Aggregate(p.result)
		resp := kmeansResponse{
			Neighborhoods:   p.result.Points,
			Hospitals:       p.result.Centroids,
			OptimalClusters: p.optimalK,
			SSE:             p.result.SSE,
			SilhouetteScore: p.score,
			Iterations:      p.result.Iterations,
			Metrics: metricsResponse{
				AvgDistance:              metrics.AvgDistance,
				MaxDistance:              metrics.MaxDistance,
				MinDistance:              metrics.MinDistance,
				StdDistance:              metrics.StdDistance,
				NeighborhoodsPerHospital: metrics.CountsPerCluster,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

// runPlacement generates the synthetic neighborhoods and clusters them. With
// no requested hospital count the optimal-k search chooses one, falling back
// to the configured heuristic above the search's point cap.
func runPlacement(cfg config.Config, req kmeansRequest) (*placement, error) {
	n := req.NumNeighborhoods
	if n == 0 {
		n = 100
	}
	planeSize := req.PlaneSize
	if planeSize == 0 {
		planeSize = 1000
	}
	seed := cfg.DefaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}

	if n > cfg.MaxNeighborhoods {
		return nil, fmt.Errorf("%w: num_neighborhoods=%d exceeds the configured ceiling of %d",
			cluster.ErrInvalidParameter, n, cfg.MaxNeighborhoods)
	}
	if req.NumHospitals != nil && (*req.NumHospitals < 1 || *req.NumHospitals > n) {
		return nil, fmt.Errorf("%w: num_hospitals=%d must be in [1, %d]",
			cluster.ErrInvalidParameter, *req.NumHospitals, n)
	}

	points, err := dataset.Generate(n, planeSize, seed)
	if err != nil {
		return nil, err
	}

	p := &placement{points: points, planeSize: planeSize}

	if req.NumHospitals != nil {
		p.optimalK = *req.NumHospitals
		p.result, err = cluster.KMeans(points, p.optimalK, seed, cluster.Options{})
		if err != nil {
			return nil, err
		}
	} else if n > cfg.OptimalKPointCap {
		// The silhouette sweep is O(n²) per candidate; past the cap we fall
		// back to the configured heuristic count.
		p.optimalK = min(cfg.HeuristicK, n)
		p.result, err = cluster.KMeans(points, p.optimalK, seed, cluster.Options{})
		if err != nil {
			return nil, err
		}
		slog.Info("Optimal-k search skipped", "points", n, "cap", cfg.OptimalKPointCap, "k", p.optimalK)
	} else {
		selection, err := cluster.SelectOptimalK(points, seed, cluster.SelectorOptions{})
		if err != nil {
			return nil, err
		}
		p.optimalK = selection.K
		p.result = selection.Result
	}

	p.score = cluster.Silhouette(p.result).Mean
	return p, nil
}

// writeClusterError maps the engine's error kinds onto HTTP statuses.
// Clustering is deterministic numeric computation, so failures are caller
// input problems and are never retried.
func writeClusterError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, cluster.ErrInvalidParameter),
		errors.Is(err, cluster.ErrInsufficientData):
		status = http.StatusBadRequest
	case errors.Is(err, cluster.ErrDegenerateInput):
		status = http.StatusUnprocessableEntity
	}
	http.Error(w, err.Error(), status)
}
