package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"brstemmer/internal/adapter/analyzer"
	"brstemmer/internal/domain"
	"brstemmer/internal/usecase"
)

var stemJSON bool

var stemCmd = &cobra.Command{
	Use:   "stem [words...]",
	Short: "Stem words",
	Long: `Stem the given words. With no arguments, words are read from standard
input, one or more per line.

Examples:
  brstemmer stem meninas cantando
  echo "os meninos cantavam" | brstemmer stem --json`,
	RunE: runStem,
}

func init() {
	rootCmd.AddCommand(stemCmd)
	stemCmd.Flags().BoolVar(&stemJSON, "json", false, "output JSON lines")
}

func runStem(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	out := cmd.OutOrStdout()
	asJSON := stemJSON || cfg.Output.Format == "json"

	tokenizer := analyzer.NewTokenizer(nil, cfg.Tokenize.MinLength, cfg.Tokenize.Stopwords)
	stemUC := usecase.NewStemUseCase(tokenizer, newStemmer())

	enc := json.NewEncoder(out)
	emit := func(p domain.Pair) error {
		if asJSON {
			return enc.Encode(p)
		}
		_, err := fmt.Fprintf(out, "%s\t%s\n", p.Word, p.Stem)
		return err
	}

	if len(args) > 0 {
		for _, p := range stemUC.StemWords(args) {
			if err := emit(p); err != nil {
				return err
			}
		}
		return nil
	}

	return stemUC.StemReader(cmd.Context(), cmd.InOrStdin(), emit)
}
