package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/naveenspark/folio/internal/config"
	"github.com/naveenspark/folio/internal/logging"
	"github.com/naveenspark/folio/internal/session"
	"github.com/naveenspark/folio/pkg/client"
)

// env is what every command works with.
type env struct {
	cfg     *config.Config
	logger  *zap.Logger
	session *session.Session
	client  *client.Client
}

// setup resolves configuration and wires the logger, session and API
// client.
func setup(cmd *cobra.Command) (*env, error) {
	if err := config.LoadDotenv(); err != nil {
		return nil, err
	}
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("command", cmd.Name()))
	return newEnv(cfg, logger), nil
}

func newEnv(cfg *config.Config, logger *zap.Logger) *env {
	sess := session.Open(session.NewStore(cfg.TokenPath), logger.Named("session"))
	c := client.New(cfg.APIURL,
		client.WithTokens(sess),
		client.WithTimeout(cfg.Timeout),
		client.WithRateLimit(cfg.RequestsPerSecond),
		client.WithLogger(logger.Named("client")),
	)
	return &env{cfg: cfg, logger: logger, session: sess, client: c}
}

func (e *env) close() {
	_ = e.logger.Sync()
}
