// Command precis prints extractive summaries of documents.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/custodia-labs/precis-cli/internal/adapters/driven/config/env"
	"github.com/custodia-labs/precis-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/precis-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/precis-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/precis-cli/internal/connectors/filesystem"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/precis-cli/internal/core/services"
	"github.com/custodia-labs/precis-cli/internal/logger"
	"github.com/custodia-labs/precis-cli/internal/normalisers/docx"
	"github.com/custodia-labs/precis-cli/internal/normalisers/html"
	"github.com/custodia-labs/precis-cli/internal/normalisers/markdown"
	"github.com/custodia-labs/precis-cli/internal/normalisers/pdf"
	"github.com/custodia-labs/precis-cli/internal/normalisers/plaintext"
	"github.com/custodia-labs/precis-cli/internal/observability"
	"github.com/custodia-labs/precis-cli/internal/rankers/lexrank"
	"github.com/custodia-labs/precis-cli/internal/segmenters/punkt"
	"github.com/custodia-labs/precis-cli/internal/segmenters/rules"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 5 * time.Second

func main() {
	cli.SetVersion(version)
	cli.SetInitializer(initialise)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func initialise(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	base, err := configStore(opts)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	store := env.New(base)
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.Debug("config: %s", store.Path())

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	summaries := services.NewSummaryService(lexrank.New(), rules.New(), punkt.New())
	registry := services.NewNormaliserRegistry(
		plaintext.New(),
		markdown.New(),
		html.New(),
		docx.New(),
		pdf.New(),
	)
	documents := services.NewDocumentService(filesystem.NewReader(), registry, summaries)
	documents.SetMinChars(settings.Summary.MinChars)

	tp, err := observability.InitTracing(ctx, &observability.TracingConfig{
		ServiceName:    "precis",
		ServiceVersion: version,
		OTLPEndpoint:   settings.Tracing.OTLPEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	summaries.SetTracer(tp.Tracer())
	documents.SetTracer(tp.Tracer())
	if settings.Tracing.OTLPEndpoint != "" {
		logger.Debug("tracing: exporting to %s", settings.Tracing.OTLPEndpoint)
	}

	return &cli.Services{
		Summary:      summaries,
		Document:     documents,
		Settings:     settingsService,
		MCPRateLimit: settings.MCP.RateLimit,
		Cleanup: func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				logger.Warn("tracing shutdown: %v", err)
			}
		},
	}, nil
}

func configStore(opts cli.Options) (driven.ConfigStore, error) {
	if opts.NoConfig {
		return memory.NewConfigStore(), nil
	}
	return file.NewConfigStore(opts.ConfigDir)
}
