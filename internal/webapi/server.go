// Package webapi is the HTTP boundary for the dashboard frontend. It
// translates requests into simulation configs, runs the engine, and
// serves chart-shaped JSON; rendering happens entirely client-side.
package webapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yeleshwarapu/energy-dashboard/internal/analytics"
	"github.com/yeleshwarapu/energy-dashboard/internal/building"
	"github.com/yeleshwarapu/energy-dashboard/internal/sim"
	"github.com/yeleshwarapu/energy-dashboard/internal/store"
)

type Server struct {
	store *store.Store
}

func NewServer(store *store.Store) *Server {
	return &Server{
		store: store,
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS for local development
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/seasons", s.handleSeasons)
		r.Post("/simulate", s.handleSimulate)
		r.Get("/scenarios", s.handleListScenarios)
		r.Post("/scenarios", s.handleCreateScenario)
		r.Get("/scenarios/{id}", s.handleGetScenario)
		r.Delete("/scenarios/{id}", s.handleDeleteScenario)
		r.Post("/scenarios/{id}/run", s.handleRunScenario)
		r.Get("/runs", s.handleListRuns)
	})

	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": "1.0.0",
	})
}

func (s *Server) handleSeasons(w http.ResponseWriter, r *http.Request) {
	seasons := []building.SeasonProfile{}
	for _, season := range building.Seasons() {
		p, err := building.ProfileFor(season)
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		seasons = append(seasons, p)
	}
	respondJSON(w, http.StatusOK, seasons)
}

// seriesPoint is one timestep of the chart payload: per-subsystem
// power keyed by hierarchical path, plus the signed total.
type seriesPoint struct {
	Minute    int                `json:"minute"`
	HourOfDay float64            `json:"hour_of_day"`
	Day       int                `json:"day"`
	Values    map[string]float64 `json:"values"`
	TotalKW   float64            `json:"total_kw"`
}

type simulateResponse struct {
	Config  building.Config    `json:"config"`
	Columns []string           `json:"columns"`
	Series  []seriesPoint      `json:"series"`
	Summary *analytics.Summary `json:"summary"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	cfg := building.DefaultConfig()
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	resp, err := s.runAndRecord("", cfg)
	if err != nil {
		respondRunError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRunScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sc, err := s.store.GetScenario(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "scenario not found: "+id)
		return
	}

	resp, err := s.runAndRecord(sc.ID, sc.Config)
	if err != nil {
		respondRunError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) runAndRecord(scenarioID string, cfg building.Config) (*simulateResponse, error) {
	res, err := sim.Run(cfg)
	if err != nil {
		return nil, err
	}
	summary, err := analytics.Summarize(res)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		// History is best-effort; a failed insert never fails the run.
		s.store.RecordRun(scenarioID, cfg, summary)
	}

	resp := &simulateResponse{
		Config:  cfg,
		Summary: summary,
	}
	for _, col := range res.Columns {
		resp.Columns = append(resp.Columns, col.Path())
	}
	for _, row := range res.Rows {
		point := seriesPoint{
			Minute:    row.Step.Minute,
			HourOfDay: row.Step.HourOfDay,
			Day:       row.Step.Day,
			Values:    make(map[string]float64, len(res.Columns)),
		}
		for i, col := range res.Columns {
			point.Values[col.Path()] = row.Values[i]
			point.TotalKW += row.Values[i]
		}
		resp.Series = append(resp.Series, point)
	}
	return resp, nil
}

func (s *Server) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := s.store.ListScenarios()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, scenarios)
}

func (s *Server) handleCreateScenario(w http.ResponseWriter, r *http.Request) {
	var sc store.Scenario
	if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if sc.Name == "" {
		respondError(w, http.StatusBadRequest, "scenario name is required")
		return
	}
	if sc.ID == "" {
		sc.ID = sc.Name + "-" + strconv.FormatInt(time.Now().Unix(), 10)
	}
	if err := sc.Config.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.SaveScenario(&sc); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, sc)
}

func (s *Server) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sc, err := s.store.GetScenario(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "scenario not found: "+id)
		return
	}
	respondJSON(w, http.StatusOK, sc)
}

func (s *Server) handleDeleteScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.DeleteScenario(id); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := s.store.ListRuns(limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, runs)
}

// respondRunError maps configuration problems to 400s so the frontend
// can show them next to the offending control.
func respondRunError(w http.ResponseWriter, err error) {
	if errors.Is(err, building.ErrInvalidConfig) || errors.Is(err, building.ErrUnknownProfile) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
