package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/naveenspark/folio/internal/session"
	"github.com/naveenspark/folio/internal/tui"
)

func runDashboard(cmd *cobra.Command, path string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	app := tui.NewApp(tui.Options{
		Client:     e.client,
		Session:    e.session,
		Logger:     e.logger.Named("tui"),
		StartPath:  path,
		AdminEmail: e.cfg.AdminEmail,
		PageSize:   e.cfg.PageSize,
		Version:    version,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Sign-ins and sign-outs from other terminals reach the dashboard
	// through the token file.
	store := e.session.Store()
	if !store.FromEnv() {
		err := session.Watch(ctx, store.Path(), e.logger.Named("watch"), func() {
			p.Send(tui.SessionChangedMsg{})
		})
		if err != nil {
			e.logger.Warn("token watch disabled", zap.Error(err))
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
