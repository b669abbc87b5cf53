package repositories

import (
	"context"
	"net/http"
	"time"

	"github.com/rohits-web03/medrecords/internal/utils"
	"gorm.io/gorm"
)

// PoolStats is the connection pool snapshot reported by /health/db.
type PoolStats struct {
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	MaxOpen         int    `json:"max_open"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    string `json:"wait_duration"`
}

// HealthHandler pings the record store and reports pool statistics.
func HealthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err != nil {
			utils.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		stat := sqlDB.Stats()
		stats := PoolStats{
			OpenConnections: stat.OpenConnections,
			InUse:           stat.InUse,
			Idle:            stat.Idle,
			MaxOpen:         stat.MaxOpenConnections,
			WaitCount:       stat.WaitCount,
			WaitDuration:    stat.WaitDuration.String(),
		}

		if err := sqlDB.PingContext(ctx); err != nil {
			utils.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"error":  err.Error(),
				"pool":   stats,
			})
			return
		}

		utils.WriteJSON(w, http.StatusOK, map[string]any{
			"status": "healthy",
			"pool":   stats,
		})
	}
}
