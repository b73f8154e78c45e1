// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package system reports whether the backend and the local session store are
// reachable.
package system

import (
	"context"
	"log/slog"

	"github.com/taibuivan/cmsadmin/internal/platform/apiclient"
	"github.com/taibuivan/cmsadmin/internal/platform/constants"
)

// Checker probes one dependency. A nil error means healthy.
type Checker func(context context.Context) error

// Dependencies holds the injectable probes beyond the backend itself.
type Dependencies struct {
	// CheckStore reads the session store.
	CheckStore Checker
}

// Check is the outcome of one probe.
type Check struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Report summarizes every probe.
type Report struct {
	Status string  `json:"status"`
	Checks []Check `json:"checks"`
}

// Healthy reports whether every probe passed.
func (report Report) Healthy() bool {
	return report.Status == "ready"
}

type Service struct {
	api          apiclient.Requester
	dependencies Dependencies
	logger       *slog.Logger
}

func NewService(api apiclient.Requester, dependencies Dependencies, logger *slog.Logger) *Service {
	return &Service{api: api, dependencies: dependencies, logger: logger}
}

// Health calls the backend liveness route.
func (service *Service) Health(context context.Context) error {
	var body map[string]any
	return service.api.Get(context, constants.PathHealth, nil, &body)
}

// Readiness probes the backend and, when configured, the session store.
func (service *Service) Readiness(context context.Context) Report {
	probes := []struct {
		name  string
		check Checker
	}{
		{"backend", service.Health},
		{"session_store", service.dependencies.CheckStore},
	}

	report := Report{Status: "ready", Checks: make([]Check, 0, len(probes))}
	for _, probe := range probes {
		if probe.check == nil {
			continue
		}

		result := Check{Name: probe.name, IsOK: true}
		if err := probe.check(context); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			report.Status = "degraded"
			service.logger.Error("readiness_check_failed", slog.String("dependency", probe.name), slog.Any("error", err))
		}
		report.Checks = append(report.Checks, result)
	}

	return report
}
