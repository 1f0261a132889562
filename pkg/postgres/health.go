package postgres

import (
	"context"
	"fmt"
	"time"
)

// HealthCheck holds the result of a connectivity probe.
type HealthCheck struct {
	Status       string        `json:"status"`
	ResponseTime time.Duration `json:"response_time"`
	ActiveConns  int32         `json:"active_connections"`
	IdleConns    int32         `json:"idle_connections"`
	Version      string        `json:"version,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// CheckHealth pings the database and fetches the server version.
func (c *Client) CheckHealth(ctx context.Context) *HealthCheck {
	start := time.Now()

	health := &HealthCheck{}
	stats := c.Stats()
	health.ActiveConns = stats.AcquiredConns()
	health.IdleConns = stats.IdleConns()

	if err := c.Ping(ctx); err != nil {
		health.Status = "unhealthy"
		health.Error = fmt.Sprintf("ping failed: %v", err)
		health.ResponseTime = time.Since(start)
		return health
	}

	var version string
	if err := c.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		health.Status = "unhealthy"
		health.Error = fmt.Sprintf("version query failed: %v", err)
		health.ResponseTime = time.Since(start)
		return health
	}

	health.Version = version
	health.Status = "healthy"
	health.ResponseTime = time.Since(start)
	return health
}

// IsHealthy returns true if the database responds to the health probe.
func (c *Client) IsHealthy(ctx context.Context) bool {
	return c.CheckHealth(ctx).Status == "healthy"
}
