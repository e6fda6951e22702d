// Package cli implements the precis command line interface with cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/precis-cli/internal/core/ports/driving"
	"github.com/custodia-labs/precis-cli/internal/logger"
)

// version is set at build time via ldflags or SetVersion.
var version = "dev"

// Services wired in by the entry point.
var (
	summaryService  driving.SummaryService
	documentService driving.DocumentService
	settingsService driving.SettingsService
	mcpRateLimit    int
)

// Persistent flags.
var (
	verbose   bool
	configDir string
	noConfig  bool
)

// Services holds the core services the commands drive.
type Services struct {
	Summary  driving.SummaryService
	Document driving.DocumentService
	Settings driving.SettingsService

	// MCPRateLimit is the tool calls per second allowed by `precis mcp`.
	MCPRateLimit int

	// Cleanup releases resources such as the tracer provider. May be nil.
	Cleanup func()
}

// Options are the global flags passed to the Initializer.
type Options struct {
	ConfigDir string
	NoConfig  bool
	Verbose   bool
}

// Initializer builds the services once global flags are parsed.
type Initializer func(ctx context.Context, opts Options) (*Services, error)

var (
	initializer Initializer
	cleanup     func()
)

var rootCmd = &cobra.Command{
	Use:   "precis",
	Short: "Extractive summaries from the command line",
	Long: `Precis picks the most representative sentences of a document and prints
them in their original order.

Sentences are weighted with TF-IDF, linked by cosine similarity and ranked
by eigenvector centrality (LexRank). Plain text, Markdown, HTML, DOCX and
PDF files are supported, as is text piped on standard input.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.precis)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "Ignore the configuration file and use defaults")
}

// SetVersion sets the version reported by `precis version`.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices wires the core services directly.
func SetServices(s *Services) {
	if s == nil {
		summaryService, documentService, settingsService, mcpRateLimit = nil, nil, nil, 0
		cleanup = nil
		return
	}
	summaryService = s.Summary
	documentService = s.Document
	settingsService = s.Settings
	mcpRateLimit = s.MCPRateLimit
	cleanup = s.Cleanup
}

// SetInitializer registers the function that builds services after flag
// parsing. It runs once, before the first command that needs services.
func SetInitializer(fn Initializer) {
	initializer = fn
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if initializer == nil || summaryService != nil {
		return nil
	}

	services, err := initializer(cmd.Context(), Options{
		ConfigDir: configDir,
		NoConfig:  noConfig,
		Verbose:   verbose,
	})
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	SetServices(services)
	return nil
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer func() {
		if cleanup != nil {
			cleanup()
		}
		_ = logger.Sync()
	}()

	err := rootCmd.ExecuteContext(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

var errNotConfigured = errors.New("services not configured")

func requireSummary() error {
	if summaryService == nil || documentService == nil {
		return fmt.Errorf("summary: %w", errNotConfigured)
	}
	return nil
}
