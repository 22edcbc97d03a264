package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"brstemmer/config"
	"brstemmer/internal/adapter/analyzer"
	"brstemmer/internal/adapter/fs"
	"brstemmer/internal/adapter/store"
	"brstemmer/internal/adapter/memstore"
	"brstemmer/internal/logger"
	"brstemmer/internal/port"
	"brstemmer/internal/usecase"
)

var (
	corpusNoStore bool
	corpusJSON    bool
	corpusTopN    int
	corpusQuiet   bool
)

var corpusCmd = &cobra.Command{
	Use:   "corpus [path]",
	Short: "Stem every word of a directory of text files",
	Long: `Split every matching file under path into words, stem them and report the
most frequent stems. Word -> stem pairs are stored in .brstemmer/stems.db
within the root directory for later lookups.

Examples:
  brstemmer corpus .                # Stem the current directory
  brstemmer corpus ./textos -n 50   # Show the 50 most frequent stems`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCorpus,
}

func init() {
	rootCmd.AddCommand(corpusCmd)
	corpusCmd.Flags().BoolVar(&corpusNoStore, "no-store", false, "do not persist word -> stem pairs")
	corpusCmd.Flags().BoolVar(&corpusJSON, "json", false, "output as JSON")
	corpusCmd.Flags().IntVarP(&corpusTopN, "top", "n", 0, "number of stems to show (default from config)")
	corpusCmd.Flags().BoolVarP(&corpusQuiet, "quiet", "q", false, "do not show a progress bar")
}

func runCorpus(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()
	out := cmd.OutOrStdout()
	asJSON := corpusJSON || cfg.Output.Format == "json"
	topN := cfg.Corpus.TopN
	if corpusTopN > 0 {
		topN = corpusTopN
	}

	// Unpersisted runs still collect pairs, in memory.
	persist := cfg.Corpus.Store && !corpusNoStore
	var st port.StemStore = memstore.NewMemoryStore(table.Fingerprint())
	if persist {
		boltStore, err := openStore(GetRootDir(), true)
		if err != nil {
			return err
		}
		st = boltStore
	}
	defer st.Close()

	walker, err := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes, 0)
	if err != nil {
		return fmt.Errorf("invalid corpus patterns: %w", err)
	}
	tokenizer := analyzer.NewTokenizer(nil, cfg.Tokenize.MinLength, cfg.Tokenize.Stopwords)
	corpusUC := usecase.NewCorpusUseCase(walker, tokenizer, newStemmer(), st, cfg.Corpus.Workers, logger.WithComponent("corpus"))

	var progress usecase.ProgressFunc
	if !corpusQuiet && !asJSON {
		progress = newProgressBar(cmd)
	}

	result, err := corpusUC.Run(cmd.Context(), path, topN, progress)
	if err != nil {
		return fmt.Errorf("corpus run failed: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(out, "\nCorpus stemmed:\n")
	fmt.Fprintf(out, "  Files:        %d\n", result.FilesProcessed)
	fmt.Fprintf(out, "  Words:        %d\n", result.Words)
	fmt.Fprintf(out, "  Unique words: %d\n", result.UniqueWords)
	fmt.Fprintf(out, "  Unique stems: %d\n", result.UniqueStems)
	if persist {
		fmt.Fprintf(out, "  Pairs stored: %d\n", result.PairsStored)
	}

	if len(result.Top) > 0 {
		fmt.Fprintf(out, "\nTop stems:\n")
		for _, sc := range result.Top {
			fmt.Fprintf(out, "  %6d  %-16s %s\n", sc.Count, sc.Stem, strings.Join(sc.Words, ", "))
		}
	}

	if result.FilesFailed > 0 {
		fmt.Fprintf(out, "\nWarnings:\n")
		for _, f := range result.Files {
			if f.Error != "" {
				fmt.Fprintf(out, "  - %s: %s\n", f.Path, f.Error)
			}
		}
	}
	return nil
}

// openStore opens the stem dictionary under dir. With create set, the data
// directory is created and the dictionary is migrated or rebuilt for the
// active rule table.
func openStore(dir string, create bool) (*store.BoltStore, error) {
	dbPath := config.StoreDBPath(dir)
	if !create {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("no stem dictionary found. Run 'brstemmer corpus' first")
		}
	} else if err := config.EnsureDataDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create .brstemmer directory: %w", err)
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open stem dictionary: %w", err)
	}
	if !create {
		return st, nil
	}

	fingerprint := table.Fingerprint()
	migration, err := st.CheckMigration(fingerprint)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to check migration: %w", err)
	}
	log := logger.WithComponent("store")
	if migration.NeedsRebuild {
		log.Warn("clearing stem dictionary", "reason", migration.Reason)
		if err := st.Clear(); err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to clear stem dictionary: %w", err)
		}
	} else if migration.NeedsMigration {
		log.Info("migrating stem dictionary", "reason", migration.Reason)
	}
	if err := st.Migrate(fingerprint); err != nil {
		st.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return st, nil
}

func newProgressBar(cmd *cobra.Command) usecase.ProgressFunc {
	var (
		bar       *progressbar.ProgressBar
		once      sync.Once
		startTime time.Time
	)
	w := cmd.ErrOrStderr()

	return func(processed, total int, currentFile string) {
		once.Do(func() {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Stemming[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(w)
				}),
			)
		})

		bar.Set(processed)

		if processed > 0 && processed < total {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			if rate > 0 {
				eta := time.Duration(float64(total-processed)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Stemming[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
