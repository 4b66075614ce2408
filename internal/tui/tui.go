// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the full-screen front-end of the shop client on
// bubbletea. It offers the same menus and actions as the line console and
// renders the same messages.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/shop-console/internal/handler"
	"github.com/MKhiriev/shop-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	ops       handler.Operations
	buildInfo models.AppBuildInfo
	options   []tea.ProgramOption
}

func New(ops handler.Operations, buildInfo models.AppBuildInfo, options ...tea.ProgramOption) *TUI {
	return &TUI{ops: ops, buildInfo: buildInfo, options: options}
}

// Run blocks until the user exits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.options...)

	finalModel, err := tea.NewProgram(newModel(ctx, t.ops, t.buildInfo), options...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}

	if result, ok := finalModel.(model); ok && result.farewell != "" {
		fmt.Println(result.farewell)
	}
	return nil
}
