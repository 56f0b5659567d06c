// containers.go
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

// Container helpers for the integration and end-to-end tests. They are also
// used by cmd/testcontainers to run the stack by hand, so every helper
// accepts a nil *testing.T.

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/localnerve/jobby/data"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	defaultMongoImage    = "mongo:7"
	defaultPostgresImage = "postgres:16-alpine"
	defaultMariaDBImage  = "mariadb:11"
	jobbyImageName       = "jobby-test:latest"
	jobbyPort            = "3000"
)

// Endpoint is a started container and the host address it is reachable on
type Endpoint struct {
	Container testcontainers.Container
	Host      string
	Port      string
}

// Terminate stops the container
func (e *Endpoint) Terminate(t *testing.T) {
	if e == nil || e.Container == nil {
		return
	}
	if err := e.Container.Terminate(context.Background()); err != nil {
		logMessage(t, "Failed to terminate container: %v", err)
	}
}

// StartMongo starts a MongoDB container and returns its connection URI
func StartMongo(t *testing.T) (*Endpoint, string) {
	ctx := context.Background()

	port, _ := nat.NewPort("tcp", "27017")
	endpoint := startContainer(t, ctx, testcontainers.ContainerRequest{
		Image:        envOr("MONGO_IMAGE", defaultMongoImage),
		ExposedPorts: []string{string(port)},
		WaitingFor:   wait.ForListeningPort(port).WithStartupTimeout(60 * time.Second),
	}, port)

	return endpoint, fmt.Sprintf("mongodb://%s:%s", endpoint.Host, endpoint.Port)
}

// StartPostgres starts a PostgreSQL container with database, user and
// password all set to "jobby"
func StartPostgres(t *testing.T) *Endpoint {
	ctx := context.Background()

	port, _ := nat.NewPort("tcp", "5432")
	return startContainer(t, ctx, testcontainers.ContainerRequest{
		Image:        envOr("POSTGRES_IMAGE", defaultPostgresImage),
		ExposedPorts: []string{string(port)},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "jobby",
			"POSTGRES_USER":     "jobby",
			"POSTGRES_DB":       "jobby",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}, port)
}

// StartMariaDB starts a MariaDB container and runs the embedded bootstrap
// script, which creates the jobby database and user
func StartMariaDB(t *testing.T) *Endpoint {
	ctx := context.Background()

	rootPassword := strings.ReplaceAll(uuid.NewString(), "-", "")
	port, _ := nat.NewPort("tcp", "3306")
	endpoint := startContainer(t, ctx, testcontainers.ContainerRequest{
		Image:        envOr("DB_IMAGE", defaultMariaDBImage),
		ExposedPorts: []string{string(port)},
		Env: map[string]string{
			"MARIADB_ROOT_PASSWORD": rootPassword,
		},
		WaitingFor: wait.ForListeningPort(port).WithStartupTimeout(60 * time.Second),
	}, port)

	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/", rootPassword, endpoint.Host, endpoint.Port))
	if err != nil {
		endpoint.Terminate(t)
		exitWithError(t, err, "Failed to connect to MariaDB for setup")
	}
	defer db.Close()

	// Wait for connection to be really ready
	for i := 0; i < 30; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		endpoint.Terminate(t)
		exitWithError(t, err, "MariaDB not ready after 30 seconds")
	}

	if err := executeSQL(db, data.InitdbMariaDB); err != nil {
		endpoint.Terminate(t)
		exitWithError(t, err, "Failed to execute MariaDB init sql")
	}

	return endpoint
}

// Stack is a MongoDB container and a jobby container on a private network
type Stack struct {
	Network        *testcontainers.DockerNetwork
	DBContainer    testcontainers.Container
	JobbyBuilder   testcontainers.Container
	JobbyContainer testcontainers.Container
	BaseURL        string
	AdminSecret    string
	UserSecret     string
}

// Terminate stops the containers and removes the network
func (s *Stack) Terminate(t *testing.T) {
	ctx := context.Background()
	if s.JobbyContainer != nil {
		if err := s.JobbyContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate jobby: %v", err)
		}
	}
	if s.JobbyBuilder != nil {
		if err := s.JobbyBuilder.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate jobby builder: %v", err)
		}
	}
	if s.DBContainer != nil {
		if err := s.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate MongoDB: %v", err)
		}
	}
	if s.Network != nil {
		if err := s.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// CreateStack starts MongoDB and the jobby service built from the repository
// Dockerfile. The image is built once and reused while it exists.
func CreateStack(t *testing.T) (*Stack, error) {
	ctx := context.Background()
	stack := &Stack{
		AdminSecret: envOr("JWT_ADMIN_PASSWORD", GeneratePassword()),
		UserSecret:  envOr("JWT_USER_PASSWORD", GeneratePassword()),
	}

	nw, err := network.New(ctx)
	if err != nil {
		exitWithError(t, err, "Failed to create network")
	}
	stack.Network = nw
	networkName := nw.Name

	// Database
	dbAlias := "mongo"
	mongoPort, _ := nat.NewPort("tcp", "27017")
	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        envOr("MONGO_IMAGE", defaultMongoImage),
			ExposedPorts: []string{string(mongoPort)},
			WaitingFor:   wait.ForListeningPort(mongoPort).WithStartupTimeout(60 * time.Second),
			Networks:     []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {dbAlias},
			},
		},
		Started: true,
	})
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, "Failed to start MongoDB")
	}
	stack.DBContainer = dbContainer

	exists, err := imageExists(ctx, jobbyImageName)
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, "Failed to check if image exists")
	}

	tcpJobbyPort, _ := nat.NewPort("tcp", jobbyPort)

	debugContainer := os.Getenv("DEBUG_CONTAINER")
	exposedPorts := []string{string(tcpJobbyPort)}
	if debugContainer == "true" {
		exposedPorts = append(exposedPorts, "2345/tcp")
	}

	hostConfigModifier := func(hostConfig *container.HostConfig) {
		if debugContainer == "true" {
			hostConfig.PortBindings = nat.PortMap{
				"2345/tcp": []nat.PortBinding{
					{HostIP: "127.0.0.1", HostPort: "2345"},
				},
			}
			hostConfig.CapAdd = []string{"SYS_PTRACE"}
		}
	}

	var waitStrategy wait.Strategy = wait.ForHTTP("/").WithPort(tcpJobbyPort).WithStartupTimeout(60 * time.Second)
	if debugContainer == "true" {
		waitStrategy = wait.ForLog("API server listening at: [::]:2345").WithStartupTimeout(5 * time.Minute)
	}

	jobbyRequest := testcontainers.ContainerRequest{
		ExposedPorts: exposedPorts,
		Env: map[string]string{
			"PORT":               jobbyPort,
			"DB_TYPE":            "mongodb",
			"MONGO_URI":          fmt.Sprintf("mongodb://%s:27017", dbAlias),
			"DB_DATABASE":        "jobby",
			"JWT_ADMIN_PASSWORD": stack.AdminSecret,
			"JWT_USER_PASSWORD":  stack.UserSecret,
			"LOG_LEVEL":          envOr("LOG_LEVEL", "info"),
		},
		HostConfigModifier: hostConfigModifier,
		WaitingFor:         waitStrategy,
		Networks:           []string{networkName},
	}

	if debugContainer == "true" {
		jobbyRequest.Entrypoint = []string{
			"/usr/local/bin/dlv",
			"--listen=:2345",
			"--headless=true",
			"--api-version=2",
			"--accept-multiclient",
			"exec",
			"./jobby",
		}
	}

	if !exists {
		sessionID := uuid.New().String()
		buildArgs := map[string]*string{
			"RESOURCE_REAPER_SESSION_ID": &sessionID,
		}
		if debugContainer == "true" {
			buildArgs["DEBUG"] = &debugContainer
		}

		buildContext := envOr("TESTCONTAINERS_BUILD_CONTEXT", "../..")

		logMessage(t, "Image %s does not exist, building...", jobbyImageName)
		builder, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    buildContext,
					Dockerfile: "Dockerfile",
					Repo:       "jobby-test-builder",
					Tag:        "latest",
					BuildArgs:  buildArgs,
					BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
						opts.Target = "builder"
					},
					PrintBuildLog: true,
				},
			},
			Started: false,
		})
		if err != nil {
			stack.Terminate(t)
			exitWithError(t, err, "Failed to build jobby-test-builder")
		}
		stack.JobbyBuilder = builder

		nameParts := strings.Split(jobbyImageName, ":")
		jobbyRequest.FromDockerfile = testcontainers.FromDockerfile{
			Context:    buildContext,
			Dockerfile: "Dockerfile",
			Repo:       nameParts[0],
			Tag:        nameParts[1],
			KeepImage:  true,
			BuildArgs:  buildArgs,
			BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
				opts.Target = "runtime"
			},
			PrintBuildLog: true,
		}
	} else {
		logMessage(t, "Image %s exists, reusing...", jobbyImageName)
		jobbyRequest.Image = jobbyImageName
	}

	jobbyContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: jobbyRequest,
		Started:          true,
	})
	if err != nil {
		stack.Terminate(t)
		exitWithError(t, err, "Failed to start jobby")
	}
	stack.JobbyContainer = jobbyContainer

	host, _ := jobbyContainer.Host(ctx)
	port, _ := jobbyContainer.MappedPort(ctx, tcpJobbyPort)
	stack.BaseURL = fmt.Sprintf("http://%s:%s", host, port.Port())
	logMessage(t, "BASE_URL=%s", stack.BaseURL)

	logMessage(t, "jobby testcontainer started successfully")
	return stack, nil
}

func startContainer(t *testing.T, ctx context.Context, req testcontainers.ContainerRequest, port nat.Port) *Endpoint {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		exitWithError(t, err, fmt.Sprintf("Failed to start %s", req.Image))
	}

	endpoint := &Endpoint{Container: c}
	if endpoint.Host, err = c.Host(ctx); err != nil {
		endpoint.Terminate(t)
		exitWithError(t, err, "Failed to get container host")
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		endpoint.Terminate(t)
		exitWithError(t, err, "Failed to get container port")
	}
	endpoint.Port = mapped.Port()

	return endpoint
}

// executeSQL runs each statement of a script, ignoring "--" comments
func executeSQL(db *sql.DB, script string) error {
	var lines []string
	for _, line := range strings.Split(script, "\n") {
		lines = append(lines, excludeComment(line))
	}

	statements := strings.Split(strings.Join(lines, " "), ";")
	for _, stmt := range statements {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%s : when executing > %s", err.Error(), stmt)
		}
	}
	return nil
}

// excludeComment strips a trailing "--" comment that is not inside quotes
func excludeComment(line string) string {
	var quote rune
	for i, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '-' && strings.HasPrefix(line[i:], "--"):
			return line[:i]
		}
	}
	return line
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func exitWithError(t *testing.T, err error, msg string) {
	if t != nil {
		t.Fatalf(msg+": %v", err)
	} else {
		fmt.Printf(msg+": %v\n", err)
		os.Exit(1)
	}
}

func logMessage(t *testing.T, format string, args ...interface{}) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
