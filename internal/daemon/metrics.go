package daemon

import (
	"net/http"
	"sync/atomic"
	"time"
)

// Metrics tracks server statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal    atomic.Int64
	RequestsInFlight atomic.Int32
	ClientErrors     atomic.Int64
	ServerErrors     atomic.Int64
	NotFound         atomic.Int64
	TodosCreated     atomic.Int64
	TodosDeleted     atomic.Int64
	StartTime        time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// Observe records one finished request
func (m *Metrics) Observe(method string, status int) {
	m.RequestsTotal.Add(1)

	switch {
	case status >= http.StatusInternalServerError:
		m.ServerErrors.Add(1)
	case status >= http.StatusBadRequest:
		m.ClientErrors.Add(1)
	}

	switch {
	case status == http.StatusNotFound:
		m.NotFound.Add(1)
	case method == http.MethodPost && status == http.StatusCreated:
		m.TodosCreated.Add(1)
	case method == http.MethodDelete && status == http.StatusNoContent:
		m.TodosDeleted.Add(1)
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal    int64     `json:"requests_total"`
	RequestsInFlight int32     `json:"requests_in_flight"`
	ClientErrors     int64     `json:"client_errors"`
	ServerErrors     int64     `json:"server_errors"`
	NotFound         int64     `json:"not_found"`
	TodosCreated     int64     `json:"todos_created"`
	TodosDeleted     int64     `json:"todos_deleted"`
	StartTime        time.Time `json:"start_time"`
	Uptime           string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal:    m.RequestsTotal.Load(),
		RequestsInFlight: m.RequestsInFlight.Load(),
		ClientErrors:     m.ClientErrors.Load(),
		ServerErrors:     m.ServerErrors.Load(),
		NotFound:         m.NotFound.Load(),
		TodosCreated:     m.TodosCreated.Load(),
		TodosDeleted:     m.TodosDeleted.Load(),
		StartTime:        m.StartTime,
		Uptime:           time.Since(m.StartTime).String(),
	}
}
