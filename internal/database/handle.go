// handle.go
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

package database

import (
	"context"
	"errors"
	"sync"

	"github.com/localnerve/jobby/internal/config"
	"github.com/localnerve/jobby/internal/store"
	"github.com/sirupsen/logrus"
)

// ErrNotOpen is returned by Close before a successful Open
var ErrNotOpen = errors.New("database handle is not open")

// Handle owns the process-wide store. The connection is established at most
// once; every caller of Open shares the same store and error.
type Handle struct {
	cfg *config.Config
	log *logrus.Logger

	once  sync.Once
	store store.Store
	err   error
}

// NewHandle creates an unopened handle
func NewHandle(cfg *config.Config, log *logrus.Logger) *Handle {
	return &Handle{cfg: cfg, log: log}
}

// Open connects and prepares the configured backend on first call
func (h *Handle) Open(ctx context.Context) (store.Store, error) {
	h.once.Do(func() {
		h.store, h.err = open(ctx, h.cfg, h.log)
	})
	return h.store, h.err
}

// Close releases the store's connections
func (h *Handle) Close(ctx context.Context) error {
	if h.store == nil {
		return ErrNotOpen
	}
	return h.store.Close(ctx)
}

func open(ctx context.Context, cfg *config.Config, log *logrus.Logger) (store.Store, error) {
	if cfg.IsMongo() {
		client, err := ConnectMongo(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		s := store.NewMongoStore(client, cfg.DBDatabase)
		if err := s.EnsureIndexes(ctx); err != nil {
			_ = s.Close(context.Background())
			return nil, err
		}
		return s, nil
	}

	db, err := Connect(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := migrateOrClose(db); err != nil {
		return nil, err
	}
	return store.NewGormStore(db), nil
}
