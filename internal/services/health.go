// health.go
//
// Jobby, a job-board service where admins post jobs and users apply
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jobby.
// jobby is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jobby is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jobby.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"fmt"

	"github.com/localnerve/jobby/internal/config"
	"github.com/localnerve/jobby/internal/store"
	"github.com/sirupsen/logrus"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Message      string            `json:"message"`
	Status       string            `json:"status"`
	DBConnected  bool              `json:"dbConnected"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck reports whether the service can reach its store
func HealthCheck(ctx context.Context, cfg *config.Config, s store.Store, log logrus.FieldLogger) HealthCheckResult {
	result := HealthCheckResult{
		Message: "Jobby API is running",
		Status:  "ok",
		Details: map[string]string{
			"database_type": cfg.DBType,
			"database_name": cfg.DBDatabase,
		},
	}

	if s == nil {
		result.Status = "degraded"
		result.ErrorMessage = "Database is not connected"
		log.Warn("Health check failed - database not connected")
		return result
	}

	if err := s.Ping(ctx); err != nil {
		result.Status = "degraded"
		result.Details["database_ping_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
		log.WithError(err).Warn("Health check failed - database ping")
		return result
	}

	result.DBConnected = true
	log.Debug("Health check passed")
	return result
}
