// main.go
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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/localnerve/jobby/internal/config"
	"github.com/localnerve/jobby/internal/database"
	"github.com/localnerve/jobby/internal/logging"
	"github.com/localnerve/jobby/internal/services"
	"github.com/localnerve/jobby/internal/utils"
)

func main() {
	// Optional .env, the container passes real environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New("warn", cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	handle := database.NewHandle(cfg, logger)
	s, err := handle.Open(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to connect to database")
	}

	result := services.HealthCheck(ctx, cfg, s, logger)

	if s != nil {
		if err := handle.Close(context.Background()); err != nil {
			logger.WithError(err).Warn("Failed to close database")
		}
	}

	if err := utils.PingServer(cfg.Port); err != nil {
		result.Status = "degraded"
		result.Details["server_error"] = err.Error()
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	if result.Status != "ok" {
		os.Exit(1)
	}
}
