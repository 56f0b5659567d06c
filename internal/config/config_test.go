// config_test.go
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_ADMIN_PASSWORD", "admin-secret")
	t.Setenv("JWT_USER_PASSWORD", "user-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "*", cfg.FrontendURL)
	assert.Equal(t, "mongodb", cfg.DBType)
	assert.True(t, cfg.IsMongo())
	assert.Equal(t, "jobby", cfg.DBDatabase)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_USER", "jobby")
	t.Setenv("DB_CONNECTION_LIMIT", "not-a-number")
	t.Setenv("BCRYPT_COST", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsMongo())
	assert.Equal(t, 5, cfg.DBConnectionLimit)
	assert.Equal(t, 4, cfg.BcryptCost)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			DBType:         "sqlite",
			DBDatabase:     "jobby.db",
			JWTAdminSecret: "admin-secret",
			JWTUserSecret:  "user-secret",
		}
	}

	require.NoError(t, base().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing mongo uri", func(c *Config) { c.DBType = "mongodb" }},
		{"missing sql user", func(c *Config) { c.DBType = "mysql" }},
		{"unsupported type", func(c *Config) { c.DBType = "oracle" }},
		{"missing database", func(c *Config) { c.DBDatabase = "" }},
		{"missing admin secret", func(c *Config) { c.JWTAdminSecret = "" }},
		{"missing user secret", func(c *Config) { c.JWTUserSecret = "" }},
		{"shared secret", func(c *Config) { c.JWTUserSecret = c.JWTAdminSecret }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
