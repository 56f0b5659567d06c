// e2e_test.go
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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/localnerve/jobby/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2EWithFullStack runs the built service against MongoDB in containers
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	stack, err := testutil.CreateStack(t)
	require.NoError(t, err)
	defer stack.Terminate(t)

	client := &http.Client{Timeout: 10 * time.Second}

	t.Run("HealthCheck", func(t *testing.T) {
		resp, err := client.Get(stack.BaseURL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, true, body["dbConnected"])
	})

	t.Run("HealthCheckBinary", func(t *testing.T) {
		code, out, err := stack.JobbyContainer.Exec(context.Background(), []string{"./healthcheck"})
		require.NoError(t, err)
		output, _ := io.ReadAll(out)
		assert.Zero(t, code, "healthcheck output: %s", output)
	})

	t.Run("PrometheusMetrics", func(t *testing.T) {
		resp, err := client.Get(stack.BaseURL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "jobby_")
	})

	t.Run("SwaggerUI", func(t *testing.T) {
		resp, err := client.Get(stack.BaseURL + "/swagger/index.html")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("ApplyScenario", func(t *testing.T) {
		testApplyScenario(t, client, stack.BaseURL)
	})
}

func call(t *testing.T, client *http.Client, method, url, token string, in, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func testApplyScenario(t *testing.T, client *http.Client, baseURL string) {
	suffix := time.Now().Format("150405.000")
	admin := map[string]string{"username": "a1-" + suffix, "email": "a1-" + suffix + "@x.com", "password": "pw", "name": "A1"}
	user := map[string]string{"username": "u1-" + suffix, "email": "u1-" + suffix + "@x.com", "password": "pw", "name": "U1"}

	var signedIn struct {
		Token string `json:"token"`
	}

	require.Equal(t, http.StatusOK, call(t, client, http.MethodPost, baseURL+"/admin/signup", "", admin, nil))
	require.Equal(t, http.StatusOK, call(t, client, http.MethodPost, baseURL+"/admin/signin", "", admin, &signedIn))
	adminToken := signedIn.Token

	var created struct {
		JobID string `json:"jobId"`
	}
	require.Equal(t, http.StatusOK, call(t, client, http.MethodPost, baseURL+"/admin/jobs", adminToken,
		map[string]string{"title": "Eng"}, &created))
	require.NotEmpty(t, created.JobID)

	require.Equal(t, http.StatusOK, call(t, client, http.MethodPost, baseURL+"/user/signup", "", user, nil))
	require.Equal(t, http.StatusOK, call(t, client, http.MethodPost, baseURL+"/user/signin", "", user, &signedIn))
	userToken := signedIn.Token

	require.Equal(t, http.StatusOK, call(t, client, http.MethodPost, baseURL+"/jobApplication/apply", userToken,
		map[string]string{"jobId": created.JobID}, nil))

	var listed struct {
		Applications []struct {
			JobID       string `json:"jobId"`
			JobSnapshot struct {
				Title string `json:"title"`
			} `json:"jobSnapshot"`
		} `json:"applications"`
	}
	require.Equal(t, http.StatusOK, call(t, client, http.MethodGet, baseURL+"/jobApplication/", userToken, nil, &listed))
	require.Len(t, listed.Applications, 1)
	assert.Equal(t, created.JobID, listed.Applications[0].JobID)
	assert.Equal(t, "Eng", listed.Applications[0].JobSnapshot.Title)

	// The user token never opens admin routes
	assert.Equal(t, http.StatusUnauthorized, call(t, client, http.MethodGet, baseURL+"/admin/all-jobs", userToken, nil, nil))
}
