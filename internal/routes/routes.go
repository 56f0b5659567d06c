// routes.go
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

package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/localnerve/jobby/internal/auth"
	"github.com/localnerve/jobby/internal/config"
	"github.com/localnerve/jobby/internal/handlers"
	"github.com/localnerve/jobby/internal/middleware"
	"github.com/localnerve/jobby/internal/services"
	"github.com/localnerve/jobby/internal/store"
	"github.com/localnerve/jobby/internal/utils"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators the routes are built from
type Deps struct {
	Config *config.Config
	Store  store.Store
	Tokens *auth.TokenService
	Hasher auth.Hasher
	Log    *logrus.Logger
}

// NewApp creates the fiber app with the error handler and the middleware
// every route needs. Callers add their own middleware before calling Setup.
func NewApp(cfg *config.Config, log *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          utils.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(corsConfig(cfg.FrontendURL)))

	return app
}

// Setup mounts the health, admin, user and job application routes
func Setup(app *fiber.App, deps Deps) {
	accounts := &services.AccountService{
		Store:  deps.Store,
		Hasher: deps.Hasher,
		Tokens: deps.Tokens,
		Log:    deps.Log,
	}
	jobs := &services.JobService{Store: deps.Store, Log: deps.Log}
	applications := &services.ApplicationService{Store: deps.Store, Log: deps.Log}
	profiles := &services.ProfileService{Store: deps.Store, Log: deps.Log}

	healthHandler := &handlers.HealthHandler{Config: deps.Config, Store: deps.Store, Log: deps.Log}
	adminHandler := &handlers.AdminHandler{Accounts: accounts, Jobs: jobs}
	userHandler := &handlers.UserHandler{
		Accounts:     accounts,
		Profiles:     profiles,
		Jobs:         jobs,
		Applications: applications,
	}
	applicationHandler := &handlers.ApplicationHandler{Applications: applications}

	adminAuth := middleware.AuthAdmin(deps.Tokens, deps.Log)
	userAuth := middleware.AuthUser(deps.Tokens, deps.Log)

	app.Get("/", healthHandler.Health)

	admin := app.Group("/admin")
	admin.Post("/signup", adminHandler.Signup)
	admin.Post("/signin", adminHandler.Signin)
	admin.Post("/jobs", adminAuth, adminHandler.CreateJob)
	admin.Put("/jobs/:jobId", adminAuth, adminHandler.UpdateJob)
	admin.Delete("/jobs/:jobId", adminAuth, adminHandler.DeleteJob)
	admin.Get("/jobs", adminAuth, adminHandler.ListOwnJobs)
	admin.Get("/all-jobs", adminAuth, adminHandler.ListAllJobs)
	admin.Get("/job/:jobId", adminAuth, adminHandler.GetJob)

	user := app.Group("/user")
	user.Post("/signup", userHandler.Signup)
	user.Post("/signin", userHandler.Signin)
	user.Get("/profile", userAuth, userHandler.GetProfile)
	user.Put("/profile", userAuth, userHandler.UpdateProfile)
	user.Get("/jobs", userAuth, userHandler.ListJobs)
	user.Get("/jobs/:jobId", userAuth, userHandler.GetJob)

	jobApplication := app.Group("/jobApplication")
	jobApplication.Post("/apply", userAuth, applicationHandler.Apply)
	jobApplication.Get("/", userAuth, applicationHandler.List)
	jobApplication.Delete("/:applicationId", userAuth, applicationHandler.Delete)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})
}

// corsConfig allows the configured frontend. Credentials cannot be combined
// with a wildcard origin.
func corsConfig(frontendURL string) cors.Config {
	if frontendURL == "" || frontendURL == "*" {
		return cors.Config{AllowOrigins: "*"}
	}
	return cors.Config{
		AllowOrigins:     frontendURL,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}
}
