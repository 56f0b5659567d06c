// config.go
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

package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port        string
	FrontendURL string

	// Database configuration
	DBType            string // mongodb, mysql, postgres, sqlite, sqlserver
	MongoURI          string
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Token signing secrets, one per signing domain
	JWTAdminSecret string
	JWTUserSecret  string
	BcryptCost     int

	// Logging
	LogLevel  string
	LogFormat string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		FrontendURL:       getEnv("FRONTEND_URL", "*"),
		DBType:            getEnv("DB_TYPE", "mongodb"),
		MongoURI:          getEnv("MONGO_URI", ""),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", ""),
		DBDatabase:        getEnv("DB_DATABASE", "jobby"),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		JWTAdminSecret:    getEnv("JWT_ADMIN_PASSWORD", ""),
		JWTUserSecret:     getEnv("JWT_USER_PASSWORD", ""),
		BcryptCost:        getEnvAsInt("BCRYPT_COST", 10),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields
func (cfg *Config) Validate() error {
	switch cfg.DBType {
	case "mongodb", "mongo":
		if cfg.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required")
		}
	case "mysql", "mariadb", "postgres", "postgresql", "sqlserver", "mssql":
		if cfg.DBUser == "" {
			return fmt.Errorf("DB_USER is required")
		}
	case "sqlite":
	default:
		return fmt.Errorf("unsupported DB_TYPE: %s", cfg.DBType)
	}
	if cfg.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.JWTAdminSecret == "" {
		return fmt.Errorf("JWT_ADMIN_PASSWORD is required")
	}
	if cfg.JWTUserSecret == "" {
		return fmt.Errorf("JWT_USER_PASSWORD is required")
	}
	if cfg.JWTAdminSecret == cfg.JWTUserSecret {
		return fmt.Errorf("JWT_ADMIN_PASSWORD and JWT_USER_PASSWORD must differ")
	}
	return nil
}

// IsMongo reports whether the document store backend is selected
func (cfg *Config) IsMongo() bool {
	return cfg.DBType == "mongodb" || cfg.DBType == "mongo"
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
