package models

// Monitor represents a monitored target as returned by the user service.
// The gateway relays monitor definitions opaquely; this shape documents the
// contract the dashboard consumes.
type Monitor struct {
	ID              int     `json:"id"`
	URL             string  `json:"url"`
	IntervalSeconds int     `json:"interval_seconds"`
	IsActive        bool    `json:"is_active"`
	UptimePercent   float64 `json:"uptime_percent"`
}

// StatusSnapshot is the most recent check result for a monitor, written to the
// cache store by the checker pipeline. Exactly one snapshot exists per monitor
// and it is overwritten on every check. Absence means "pending/unknown", which
// is distinct from down.
//
// Timestamp is kept as the checker's ISO-8601 string; the gateway never parses
// it, only relays it. StatusCode, LatencyMs and Error are null when the probe
// failed before a response was observed.
type StatusSnapshot struct {
	MonitorID  int     `json:"monitor_id"`
	URL        string  `json:"url"`
	Timestamp  string  `json:"timestamp"`
	IsUp       bool    `json:"is_up"`
	StatusCode *int    `json:"status_code"`
	LatencyMs  *int64  `json:"latency_ms"`
	Error      *string `json:"error"`
}

// HistoryPoint is one retained latency/status sample from the bounded recent
// history list. It carries the same encoding as StatusSnapshot because the
// checker pushes the identical payload to both keys.
type HistoryPoint struct {
	MonitorID  int     `json:"monitor_id"`
	URL        string  `json:"url"`
	Timestamp  string  `json:"timestamp"`
	IsUp       bool    `json:"is_up"`
	StatusCode *int    `json:"status_code"`
	LatencyMs  *int64  `json:"latency_ms"`
	Error      *string `json:"error"`
}

// IncidentEvent is a discrete UP/DOWN transition record owned by the user
// service. The gateway reads and relays incidents, never creates them.
type IncidentEvent struct {
	ID        int    `json:"id"`
	EventType string `json:"event_type"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
}
