package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the defaults used when summarising.

Settings are stored in ~/.precis/config.toml and can be overridden with
PRECIS_* environment variables (for example PRECIS_SUMMARY_SENTENCES=3).`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting by its configuration key.

Examples:
  precis settings set summary.sentences 4
  precis settings set summary.language fr
  precis settings set output.format json`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List configuration keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

var errSettingsNotConfigured = errors.New("settings service not configured")

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	s := settings.Summary
	cmd.Println("[Summary]")
	cmd.Printf("  Sentences: %d\n", s.SentenceCount)
	cmd.Printf("  Language: %s (%s)\n", s.Language, s.Language.Name())
	cmd.Printf("  Segmenter: %s\n", s.Segmenter.Description())
	cmd.Printf("  Stop words: %s\n", onOff(s.StopWords))
	cmd.Printf("  Stemming: %s\n", onOff(s.Stem))
	if s.Threshold > 0 {
		cmd.Printf("  Threshold: %g (discrete)\n", s.Threshold)
	} else {
		cmd.Printf("  Threshold: none (continuous)\n")
	}
	if s.Damping > 0 {
		cmd.Printf("  Damping: %g\n", s.Damping)
	} else {
		cmd.Printf("  Damping: none\n")
	}
	cmd.Printf("  Epsilon: %g\n", s.Epsilon)
	cmd.Printf("  Max iterations: %d\n", s.MaxIterations)
	cmd.Printf("  Min chars: %d\n", s.MinChars)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format.Description())
	cmd.Println()

	cmd.Println("[MCP]")
	if settings.MCP.RateLimit > 0 {
		cmd.Printf("  Rate limit: %d/s\n", settings.MCP.RateLimit)
	} else {
		cmd.Printf("  Rate limit: unlimited\n")
	}
	cmd.Println()

	cmd.Println("[Tracing]")
	if settings.Tracing.OTLPEndpoint != "" {
		cmd.Printf("  OTLP endpoint: %s\n", settings.Tracing.OTLPEndpoint)
	} else {
		cmd.Printf("  OTLP endpoint: (disabled)\n")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'precis settings reset' to restore defaults.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	key := strings.ToLower(strings.TrimSpace(args[0]))
	if err := settingsService.Set(key, args[1]); err != nil {
		if errors.Is(err, domain.ErrInvalidParameter) && !slices.Contains(settingsService.Keys(), key) {
			return fmt.Errorf("unknown setting %q (run 'precis settings keys'): %w", key, err)
		}
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, strings.TrimSpace(args[1]))
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	cmd.Println("Settings restored to defaults.")
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
