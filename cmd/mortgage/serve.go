package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/cloud-ru/mortgage-calculator-go/internal/chart"
	"github.com/cloud-ru/mortgage-calculator-go/internal/config"
	"github.com/cloud-ru/mortgage-calculator-go/internal/server"
	"github.com/cloud-ru/mortgage-calculator-go/internal/tools"
	"github.com/cloud-ru/mortgage-calculator-go/internal/tracing"
)

func runServe(ctx context.Context, cfg *config.Config) error {
	log.Info("Starting mortgage calculator...")

	tracer, shutdownTracing, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint)
	if err != nil {
		return fmt.Errorf("failed to init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.WithError(err).Warn("Error shutting down tracing")
		}
	}()

	registry := tools.NewRegistry(cfg, tracer)
	renderer := chart.NewRenderer(cfg.ChartWidth, cfg.ChartHeight)

	srv := server.New(cfg, registry, renderer)
	defer srv.Close()

	log.WithField("tools", registry.Names()).Info("Tools registered")
	return srv.Run(ctx)
}
