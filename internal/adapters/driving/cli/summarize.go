package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/precis-cli/internal/connectors/filesystem"
	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/language"
	"github.com/custodia-labs/precis-cli/internal/logger"
)

// emptyInputWarning is printed when the input has no usable sentence.
const emptyInputWarning = "Warning: not enough text to summarise"

var summarizeCmd = &cobra.Command{
	Use:     "summarize [file|-]",
	Aliases: []string{"summarise"},
	Short:   "Summarise a document",
	Long: `Summarise a document by extracting its most central sentences.

The input is a file path, or "-" (or nothing) to read standard input. The
file type is detected from the extension; piped input is plain text unless
--type says otherwise.

Examples:
  precis summarize report.pdf
  precis summarize -n 3 --format json notes.md
  curl -s https://example.com/post | precis summarize --type text/html
  precis summarize --watch draft.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummarize,
}

func init() {
	f := summarizeCmd.Flags()
	f.IntP("sentences", "n", domain.DefaultSentenceCount, "Number of sentences in the summary")
	f.StringP("language", "l", "", "Document language (en, hi, fr, de or es)")
	f.StringP("format", "f", "", "Output format: bullets, text, json, yaml")
	f.StringP("output", "o", "", "Write the summary to a file")
	f.BoolP("watch", "w", false, "Re-summarise whenever the file changes")
	f.String("segmenter", "", "Sentence segmenter: rules, punkt")
	f.Float64("threshold", 0, "Similarity threshold for discrete LexRank (0 = continuous)")
	f.String("type", "text/plain", "MIME type of standard input")
	rootCmd.AddCommand(summarizeCmd)
}

// summarizeRequest is the resolved input of one summarize invocation.
type summarizeRequest struct {
	path   string
	opts   domain.SummaryOptions
	format domain.OutputFormat
	output string
}

func runSummarize(cmd *cobra.Command, args []string) error {
	if err := requireSummary(); err != nil {
		return err
	}

	req, err := resolveSummarizeRequest(cmd, args)
	if err != nil {
		return err
	}

	watch, _ := cmd.Flags().GetBool("watch")
	if watch {
		if req.path == filesystem.StdinPath {
			return errors.New("--watch needs a file argument")
		}
		return watchAndSummarize(cmd, req)
	}

	return summarizeOnce(cmd, req)
}

func resolveSummarizeRequest(cmd *cobra.Command, args []string) (*summarizeRequest, error) {
	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		current, err := settingsService.Get()
		if err != nil {
			return nil, fmt.Errorf("failed to get settings: %w", err)
		}
		settings = *current
	}

	req := &summarizeRequest{
		path:   filesystem.StdinPath,
		opts:   settings.Summary.Options(),
		format: settings.Output.Format,
	}
	if len(args) == 1 {
		req.path = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("sentences") {
		n, _ := flags.GetInt("sentences")
		if n < 0 {
			return nil, fmt.Errorf("sentences must be >= 0, got %d: %w", n, domain.ErrInvalidParameter)
		}
		req.opts.SentenceCount = n
	}
	if flags.Changed("language") {
		value, _ := flags.GetString("language")
		lang, err := language.ParseSupported(value)
		if err != nil {
			return nil, err
		}
		req.opts.Language = lang
	}
	if flags.Changed("segmenter") {
		value, _ := flags.GetString("segmenter")
		kind := domain.SegmenterKind(strings.ToLower(value))
		if !kind.IsValid() {
			return nil, fmt.Errorf("segmenter %q: %w", value, domain.ErrUnsupportedType)
		}
		req.opts.Segmenter = kind
	}
	if flags.Changed("threshold") {
		req.opts.Rank.Threshold, _ = flags.GetFloat64("threshold")
	}
	if flags.Changed("format") {
		value, _ := flags.GetString("format")
		req.format = domain.OutputFormat(strings.ToLower(value))
	}
	if !req.format.IsValid() {
		return nil, fmt.Errorf("output format %q: %w", req.format, domain.ErrUnsupportedType)
	}
	req.output, _ = flags.GetString("output")

	return req, nil
}

// summarizeOnce summarises the request input and writes the result.
// Input without usable sentences prints a warning and is not an error.
func summarizeOnce(cmd *cobra.Command, req *summarizeRequest) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		result *domain.DocumentSummary
		err    error
	)
	if req.path == filesystem.StdinPath {
		result, err = summarizeStdin(ctx, cmd, req)
	} else {
		result, err = documentService.SummariseFile(ctx, req.path, req.opts)
	}
	if errors.Is(err, domain.ErrEmptyInput) {
		logger.Debug("summarize: %v", err)
		fmt.Fprintln(cmd.ErrOrStderr(), emptyInputWarning)
		return nil
	}
	if err != nil {
		return err
	}

	if result.Summary != nil && !result.Summary.Converged {
		logger.Warn("ranking stopped after %d iterations without converging", result.Summary.Iterations)
	}

	if req.output == "" {
		return renderSummary(cmd.OutOrStdout(), result, req.format)
	}

	var buf bytes.Buffer
	if err := renderSummary(&buf, result, req.format); err != nil {
		return err
	}
	if err := os.WriteFile(req.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", req.output, err)
	}
	cmd.Printf("Summary written to %s\n", req.output)
	return nil
}

func summarizeStdin(ctx context.Context, cmd *cobra.Command, req *summarizeRequest) (*domain.DocumentSummary, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errors.New("no input: pass a file or pipe text on standard input")
	}

	content, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	mimeType, _ := cmd.Flags().GetString("type")
	raw := &domain.RawDocument{
		URI:      filesystem.StdinPath,
		MIMEType: mimeType,
		Content:  content,
	}
	return documentService.SummariseRaw(ctx, raw, req.opts)
}

// watchAndSummarize prints a summary now and again after every change to
// the file, until the command context is cancelled.
func watchAndSummarize(cmd *cobra.Command, req *summarizeRequest) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	watcher := filesystem.NewWatcher(req.path)
	defer watcher.Close()

	changes, err := watcher.Watch(ctx)
	if err != nil {
		return err
	}

	if err := summarizeOnce(cmd, req); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for changes (Ctrl+C to stop)\n", watcher.Path())

	for change := range changes {
		if change.Removed {
			logger.Info("%s was removed; waiting for it to reappear", change.Path)
			continue
		}
		cmd.Println()
		if err := summarizeOnce(cmd, req); err != nil {
			// Keep watching after errors.
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}
	return nil
}
