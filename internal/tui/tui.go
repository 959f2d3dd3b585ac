// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the read-only terminal post browser.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoBlogClient = errors.New("blog client is required")

type TUI struct {
	client adapter.BlogClient
	info   models.AppBuildInfo
	logger *logger.Logger
}

func New(client adapter.BlogClient, info models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if client == nil {
		return nil, errNoBlogClient
	}

	return &TUI{client: client, info: info, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newBrowserModel(ctx, t.client, t.info)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Msg("tui stopped with error")
		return err
	}

	return nil
}
