package services

import (
	"context"
	"fmt"
	"time"

	"github.com/localnerve/gamesdb/internal/config"
	"github.com/localnerve/gamesdb/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	DatabaseHost string            `json:"databaseHost,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every check passed
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

// HealthCheck pings the database and, for networked databases, the database host
func HealthCheck(ctx context.Context, cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		logrus.WithError(err).Warn("Health check failed - database connection")
	} else if err := sqlDB.PingContext(ctx); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
		logrus.WithError(err).Warn("Health check failed - database ping")
	} else {
		result.Database = "ok"
		result.Details["database_type"] = cfg.DBType
		result.Details["database_name"] = cfg.DBDatabase
	}

	// Check the database host for networked dialects
	if cfg.Networked() {
		if err := utils.PingDatabaseHost(cfg.DBHost, cfg.DBPort); err != nil {
			result.Status = "unhealthy"
			result.DatabaseHost = "unreachable"
			result.Details["database_host_error"] = err.Error()
			if result.ErrorMessage == "" {
				result.ErrorMessage = fmt.Sprintf("Database host ping failed: %v", err)
			} else {
				result.ErrorMessage += fmt.Sprintf("; Database host ping failed: %v", err)
			}
			logrus.WithError(err).Warn("Health check failed - database host ping")
		} else {
			result.DatabaseHost = "ok"
			result.Details["database_host"] = cfg.DBHost
		}
	}

	if result.Healthy() {
		logrus.Debug("Health check passed - all systems operational")
	}

	return result
}
