package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/oho/hospital-planner-daemon/internal/config"
)

// handleChart renders the clustered plane as an HTML scatter chart: one
// series per cluster plus the hospital placements overlaid. It accepts the
// same inputs as the JSON endpoint, as query parameters.
func handleChart(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := chartRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := runPlacement(cfg, req)
		if err != nil {
			writeClusterError(w, err)
			return
		}

		scatter := charts.NewScatter()
		scatter.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{
				PageTitle: "Hospital Placement",
				Theme:     "dark",
				Width:     "900px",
				Height:    "900px",
			}),
			charts.WithTitleOpts(opts.Title{
				Title: "Hospital Placement",
				Subtitle: fmt.Sprintf("neighborhoods=%d hospitals=%d sse=%.1f silhouette=%.3f",
					len(p.result.Points), len(p.result.Centroids), p.result.SSE, p.score),
			}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
			charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: p.planeSize}),
			charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: p.planeSize}),
		)

		clusters := make([][]opts.ScatterData, len(p.result.Centroids))
		for _, pt := range p.result.Points {
			clusters[pt.Cluster] = append(clusters[pt.Cluster],
				opts.ScatterData{Value: []interface{}{pt.X, pt.Y, pt.Weight}})
		}
		for j, data := range clusters {
			scatter.AddSeries(fmt.Sprintf("cluster %d", j), data,
				charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
		}

		hospitals := make([]opts.ScatterData, len(p.result.Centroids))
		for i, c := range p.result.Centroids {
			hospitals[i] = opts.ScatterData{Value: []interface{}{c.X, c.Y}, Symbol: "diamond"}
		}
		scatter.AddSeries("hospitals", hospitals,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 18}))

		var buf bytes.Buffer
		if err := scatter.Render(&buf); err != nil {
			http.Error(w, fmt.Sprintf("failed to render chart: %v", err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}

// chartRequest maps the chart endpoint's query parameters onto the shared
// request shape. Absent parameters keep their defaults.
func chartRequest(r *http.Request) (kmeansRequest, error) {
	var req kmeansRequest
	q := r.URL.Query()

	if v := q.Get("num_neighborhoods"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("invalid num_neighborhoods %q", v)
		}
		req.NumNeighborhoods = n
	}
	if v := q.Get("num_hospitals"); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("invalid num_hospitals %q", v)
		}
		req.NumHospitals = &k
	}
	if v := q.Get("plane_size"); v != "" {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, fmt.Errorf("invalid plane_size %q", v)
		}
		req.PlaneSize = size
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, fmt.Errorf("invalid seed %q", v)
		}
		req.Seed = &seed
	}

	return req, nil
}
