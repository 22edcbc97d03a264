package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"brstemmer/internal/adapter/fs"
	"brstemmer/internal/domain"
	"brstemmer/internal/port"
)

// ProgressFunc is called after each file with the number of files done.
type ProgressFunc func(processed, total int, currentFile string)

// CorpusUseCase stems every word of a set of files.
type CorpusUseCase struct {
	walker    port.FileWalker
	tokenizer port.Tokenizer
	stemmer   port.Stemmer
	store     port.StemStore
	workers   int
	log       *slog.Logger
}

// NewCorpusUseCase creates a corpus use case. store may be nil, in which case
// nothing is persisted.
func NewCorpusUseCase(
	walker port.FileWalker,
	tokenizer port.Tokenizer,
	stemmer port.Stemmer,
	store port.StemStore,
	workers int,
	log *slog.Logger,
) *CorpusUseCase {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &CorpusUseCase{
		walker:    walker,
		tokenizer: tokenizer,
		stemmer:   stemmer,
		store:     store,
		workers:   workers,
		log:       log,
	}
}

// CorpusResult contains the results of a corpus run.
type CorpusResult struct {
	FilesProcessed int                 `json:"files_processed"`
	FilesFailed    int                 `json:"files_failed"`
	Words          int                 `json:"words"`
	UniqueWords    int                 `json:"unique_words"`
	UniqueStems    int                 `json:"unique_stems"`
	PairsStored    int                 `json:"pairs_stored"`
	Top            []domain.StemCount  `json:"top"`
	Files          []domain.FileReport `json:"files"`
}

type fileStems struct {
	counts map[string]int    // word -> occurrences
	stems  map[string]string // word -> stem
}

// Run walks root and stems every file found. Unreadable files are reported in
// the result and do not stop the run. topN limits Top; zero keeps every stem.
func (u *CorpusUseCase) Run(ctx context.Context, root string, topN int, progress ProgressFunc) (*CorpusResult, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}
	u.log.Debug("corpus files selected", "root", root, "files", len(files))

	reports := make([]domain.FileReport, len(files))
	perFile := make([]fileStems, len(files))

	var (
		mu        sync.Mutex
		processed int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			reports[i] = domain.FileReport{Path: file.RelPath}
			fsm, err := u.stemFile(file.Path)
			if err != nil {
				reports[i].Error = err.Error()
				u.log.Warn("failed to stem file", "path", file.RelPath, "error", err)
			} else {
				perFile[i] = fsm
				for _, n := range fsm.counts {
					reports[i].Words += n
				}
			}

			if progress != nil {
				mu.Lock()
				processed++
				progress(processed, len(files), file.RelPath)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("corpus run interrupted: %w", err)
	}

	result := u.aggregate(reports, perFile, topN)

	if u.store != nil {
		pairs := make([]domain.Pair, 0, result.UniqueWords)
		seen := make(map[string]struct{}, result.UniqueWords)
		for _, fsm := range perFile {
			for word, stem := range fsm.stems {
				if _, ok := seen[word]; ok {
					continue
				}
				seen[word] = struct{}{}
				pairs = append(pairs, domain.Pair{Word: word, Stem: stem})
			}
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].Word < pairs[j].Word })
		if err := u.store.PutPairs(pairs); err != nil {
			return nil, fmt.Errorf("failed to store stems: %w", err)
		}
		result.PairsStored = len(pairs)
	}

	u.log.Info("corpus stemmed",
		"files", result.FilesProcessed,
		"failed", result.FilesFailed,
		"words", result.Words,
		"stems", result.UniqueStems,
	)
	return result, nil
}

func (u *CorpusUseCase) stemFile(path string) (fileStems, error) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return fileStems{}, fmt.Errorf("failed to read file: %w", err)
	}

	fsm := fileStems{
		counts: make(map[string]int),
		stems:  make(map[string]string),
	}
	for _, word := range u.tokenizer.Words(content) {
		fsm.counts[word]++
		if _, ok := fsm.stems[word]; !ok {
			fsm.stems[word] = u.stemmer.Stem(word)
		}
	}
	return fsm, nil
}

func (u *CorpusUseCase) aggregate(reports []domain.FileReport, perFile []fileStems, topN int) *CorpusResult {
	result := &CorpusResult{Files: reports}

	wordCounts := make(map[string]int)
	wordStems := make(map[string]string)
	for i, fsm := range perFile {
		if reports[i].Error != "" {
			result.FilesFailed++
			continue
		}
		result.FilesProcessed++
		for word, n := range fsm.counts {
			wordCounts[word] += n
			wordStems[word] = fsm.stems[word]
			result.Words += n
		}
	}

	byStem := make(map[string]*domain.StemCount)
	for word, n := range wordCounts {
		stem := wordStems[word]
		sc, ok := byStem[stem]
		if !ok {
			sc = &domain.StemCount{Stem: stem}
			byStem[stem] = sc
		}
		sc.Count += n
		sc.Words = append(sc.Words, word)
	}

	top := make([]domain.StemCount, 0, len(byStem))
	for _, sc := range byStem {
		sort.Strings(sc.Words)
		top = append(top, *sc)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Stem < top[j].Stem
	})
	if topN > 0 && len(top) > topN {
		top = top[:topN]
	}

	result.UniqueWords = len(wordCounts)
	result.UniqueStems = len(byStem)
	result.Top = top
	return result
}
