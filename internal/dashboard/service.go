// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dashboard computes the headline counts shown on the admin landing page.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/cmsadmin/internal/platform/apiclient"
	"github.com/taibuivan/cmsadmin/internal/platform/constants"
)

// Stats holds one count per collection. A count whose query failed is 0.
type Stats struct {
	ContentTypes int `json:"contentTypes"`
	Media        int `json:"media"`
	Users        int `json:"users"`
}

// Service runs the count queries.
type Service struct {
	api    apiclient.Requester
	logger *slog.Logger
}

func NewService(api apiclient.Requester, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// Stats issues the three count queries concurrently. They are independent:
// one failing neither cancels nor affects the others. The returned stats are
// always usable; the error joins every failed query.
//
// Each count is the length of the "data" array of the first page, exactly as
// the backend returns it.
func (service *Service) Stats(context context.Context) (Stats, error) {
	var (
		stats   Stats
		errs    [3]error
		group   errgroup.Group
		started = time.Now()
	)

	queries := []struct {
		name     string
		endpoint string
		target   *int
	}{
		{"content_types", constants.PathContentTypes, &stats.ContentTypes},
		{"media", constants.PathMedia, &stats.Media},
		{"users", constants.PathAdminUsers, &stats.Users},
	}

	for i, query := range queries {
		group.Go(func() error {
			count, err := service.count(context, query.endpoint)
			if err != nil {
				errs[i] = fmt.Errorf("dashboard_count_%s_failed: %w", query.name, err)
				return errs[i]
			}
			*query.target = count
			return nil
		})
	}

	_ = group.Wait()
	err := errors.Join(errs[:]...)

	service.logger.Debug("dashboard_stats_loaded",
		slog.Int("content_types", stats.ContentTypes),
		slog.Int("media", stats.Media),
		slog.Int("users", stats.Users),
		slog.Duration("duration", time.Since(started)),
		slog.Bool("partial", err != nil),
	)
	return stats, err
}

func (service *Service) count(context context.Context, endpoint string) (int, error) {
	var envelope apiclient.Envelope[[]json.RawMessage]
	if err := service.api.Get(context, endpoint, nil, &envelope); err != nil {
		return 0, err
	}
	return len(envelope.Data), nil
}
