// Package store persists named simulation scenarios and a history of
// run summaries. It sits entirely in the presentation boundary; the
// simulation core itself holds no persisted state.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yeleshwarapu/energy-dashboard/internal/analytics"
	"github.com/yeleshwarapu/energy-dashboard/internal/building"
	_ "modernc.org/sqlite"
)

// Store handles persistent storage using SQLite
type Store struct {
	db *sql.DB
}

// Scenario is a named, saved simulation configuration.
type Scenario struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Config building.Config `json:"config"`
}

// RunRecord is one completed run's headline numbers plus the full
// summary as JSON.
type RunRecord struct {
	ID             int64              `json:"id"`
	ScenarioID     string             `json:"scenario_id,omitempty"`
	Config         building.Config    `json:"config"`
	PeakKW         float64            `json:"peak_kw"`
	TotalKWh       float64            `json:"total_kwh"`
	TotalCost      float64            `json:"total_cost"`
	SolarOffsetPct float64            `json:"solar_offset_pct"`
	Summary        *analytics.Summary `json:"summary,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

// NewStore creates a new store and initializes the database
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// initialize creates the database schema
func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scenarios (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		season TEXT NOT NULL,
		step_minutes INTEGER NOT NULL,
		days INTEGER NOT NULL,
		hvac_setpoint_c REAL NOT NULL,
		chiller_max_kw REAL NOT NULL,
		solar_capacity_kw REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scenario_id TEXT,
		config TEXT NOT NULL,
		peak_kw REAL NOT NULL,
		total_kwh REAL NOT NULL,
		total_cost REAL NOT NULL,
		solar_offset_pct REAL NOT NULL,
		summary TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario_id);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveScenario saves or updates a scenario
func (s *Store) SaveScenario(sc *Scenario) error {
	query := `INSERT OR REPLACE INTO scenarios
		(id, name, season, step_minutes, days, hvac_setpoint_c, chiller_max_kw, solar_capacity_kw, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query, sc.ID, sc.Name, string(sc.Config.Season), sc.Config.StepMinutes, sc.Config.Days,
		sc.Config.HVACSetpointC, sc.Config.ChillerMaxKW, sc.Config.SolarCapacityKW, time.Now())

	return err
}

// GetScenario retrieves a scenario by ID
func (s *Store) GetScenario(id string) (*Scenario, error) {
	query := `SELECT id, name, season, step_minutes, days, hvac_setpoint_c, chiller_max_kw, solar_capacity_kw
		FROM scenarios WHERE id = ?`

	var sc Scenario
	var season string

	err := s.db.QueryRow(query, id).Scan(&sc.ID, &sc.Name, &season, &sc.Config.StepMinutes, &sc.Config.Days,
		&sc.Config.HVACSetpointC, &sc.Config.ChillerMaxKW, &sc.Config.SolarCapacityKW)

	if err != nil {
		return nil, err
	}

	sc.Config.Season = building.Season(season)
	return &sc, nil
}

// ListScenarios retrieves all saved scenarios
func (s *Store) ListScenarios() ([]*Scenario, error) {
	query := `SELECT id, name, season, step_minutes, days, hvac_setpoint_c, chiller_max_kw, solar_capacity_kw
		FROM scenarios ORDER BY name`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scenarios := []*Scenario{}
	for rows.Next() {
		var sc Scenario
		var season string

		err := rows.Scan(&sc.ID, &sc.Name, &season, &sc.Config.StepMinutes, &sc.Config.Days,
			&sc.Config.HVACSetpointC, &sc.Config.ChillerMaxKW, &sc.Config.SolarCapacityKW)
		if err != nil {
			continue
		}

		sc.Config.Season = building.Season(season)
		scenarios = append(scenarios, &sc)
	}

	return scenarios, rows.Err()
}

// DeleteScenario deletes a scenario by ID
func (s *Store) DeleteScenario(id string) error {
	query := `DELETE FROM scenarios WHERE id = ?`
	_, err := s.db.Exec(query, id)
	return err
}

// RecordRun stores a completed run's summary in the history
func (s *Store) RecordRun(scenarioID string, cfg building.Config, summary *analytics.Summary) (int64, error) {
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return 0, err
	}
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return 0, err
	}

	query := `INSERT INTO runs (scenario_id, config, peak_kw, total_kwh, total_cost, solar_offset_pct, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	var sid sql.NullString
	if scenarioID != "" {
		sid = sql.NullString{String: scenarioID, Valid: true}
	}

	res, err := s.db.Exec(query, sid, string(cfgJSON), summary.Peak.KW, summary.TotalEnergyKWh,
		summary.TotalCost, summary.SolarOffsetPct, string(summaryJSON), time.Now())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRuns retrieves the most recent run records, newest first
func (s *Store) ListRuns(limit int) ([]*RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, scenario_id, config, peak_kw, total_kwh, total_cost, solar_offset_pct, summary, created_at
		FROM runs ORDER BY id DESC LIMIT ?`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*RunRecord{}
	for rows.Next() {
		var r RunRecord
		var sid sql.NullString
		var cfgJSON, summaryJSON string

		err := rows.Scan(&r.ID, &sid, &cfgJSON, &r.PeakKW, &r.TotalKWh, &r.TotalCost,
			&r.SolarOffsetPct, &summaryJSON, &r.CreatedAt)
		if err != nil {
			continue
		}

		if sid.Valid {
			r.ScenarioID = sid.String
		}
		json.Unmarshal([]byte(cfgJSON), &r.Config)
		json.Unmarshal([]byte(summaryJSON), &r.Summary)

		records = append(records, &r)
	}

	return records, rows.Err()
}
