// metrics.go
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

// Package metrics holds the domain counters exported next to the fiber
// request metrics on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthRejections counts requests stopped by an authorization guard.
	AuthRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jobby",
		Name:      "auth_rejections_total",
		Help:      "Requests rejected by an authorization guard.",
	}, []string{"guard", "reason"})

	// Signups counts created accounts.
	Signups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jobby",
		Name:      "signups_total",
		Help:      "Accounts created, by role.",
	}, []string{"role"})

	// Signins counts signin attempts.
	Signins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jobby",
		Name:      "signins_total",
		Help:      "Signin attempts, by role and result.",
	}, []string{"role", "result"})

	// Applications counts submitted job applications.
	Applications = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "jobby",
		Name:      "applications_total",
		Help:      "Job applications submitted.",
	})
)
