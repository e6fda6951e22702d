package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/language"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Long: `List the languages with dedicated stop words, abbreviations and stemmers.

Other ISO 639-1 codes are accepted and processed with a generic profile.`,
	Args: cobra.NoArgs,
	RunE: runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tSTOP WORDS\tSTEMMER")
	for _, code := range domain.SupportedLanguages() {
		profile := language.Lookup(code)
		stemmer := "no"
		if profile.HasStemmer() {
			stemmer = "yes"
		}
		marker := ""
		if code == domain.DefaultLanguage {
			marker = " (default)"
		}
		fmt.Fprintf(w, "%s\t%s%s\t%d\t%s\n", code, code.Name(), marker, profile.StopWordCount(), stemmer)
	}
	return w.Flush()
}
