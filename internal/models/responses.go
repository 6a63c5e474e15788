package models

type ErrorResponse struct {
	Code    int    `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type HealthState string

const (
	HealthStatusHealthy   HealthState = "healthy"
	HealthStatusDegraded  HealthState = "degraded"
	HealthStatusUnhealthy HealthState = "unhealthy"
)

type HealthResponse struct {
	Status    HealthState            `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Version   string                 `json:"version"`
	Services  map[string]HealthState `json:"services,omitempty"`
}

// MetricsInfo is returned by the metrics endpoint.
type MetricsInfo struct {
	Uptime            string `json:"uptime"`
	TotalRequests     int64  `json:"total_requests"`
	Reconciliations   int64  `json:"reconciliations"`
	ScriptResets      int64  `json:"script_resets"`
	ActiveEditors     int    `json:"active_editors"`
	ActiveAssignments int    `json:"active_assignments"`
	TemplatesCount    int    `json:"templates_count"`
}
