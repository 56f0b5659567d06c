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
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/localnerve/jobby/internal/auth"
	"github.com/localnerve/jobby/internal/config"
	"github.com/localnerve/jobby/internal/database"
	"github.com/localnerve/jobby/internal/logging"
	"github.com/localnerve/jobby/internal/routes"

	_ "github.com/localnerve/jobby/docs/api" // Swagger docs
)

// @title Jobby API
// @version 1.0.0
// @description Job board service: admins post jobs, users browse and apply
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/jobby
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.New("info", "json").WithError(err).Fatal("Failed to load configuration")
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	tokens, err := auth.NewTokenService(cfg.JWTAdminSecret, cfg.JWTUserSecret)
	if err != nil {
		log.WithError(err).Fatal("Failed to create token service")
	}

	// Connect once at startup
	startCtx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	handle := database.NewHandle(cfg, log)
	s, err := handle.Open(startCtx)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	app := routes.NewApp(cfg, log)
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("jobby")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.Setup(app, routes.Deps{
		Config: cfg,
		Store:  s,
		Tokens: tokens,
		Hasher: auth.NewBcryptHasher(cfg.BcryptCost),
		Log:    log,
	})

	// Graceful shutdown
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigs
		log.Info("Gracefully shutting down...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.WithError(err).Warn("Shutdown did not complete")
		}
	}()

	log.WithField("port", cfg.Port).Info("Starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := handle.Close(closeCtx); err != nil {
		log.WithError(err).Warn("Failed to close database")
	}

	log.Info("Server stopped")
}
