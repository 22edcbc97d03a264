package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"brstemmer/config"
	"brstemmer/internal/adapter/analyzer"
	"brstemmer/internal/adapter/cache"
	"brstemmer/internal/adapter/fs"
	"brstemmer/internal/adapter/rulefile"
	"brstemmer/internal/port"
	"brstemmer/stemmer"
)

func main() {
	dir := flag.String("dir", ".", "Directory of text files to stem")
	rules := flag.String("rules", "", "YAML rule table (default is the built-in RSLP rules)")
	rounds := flag.Int("rounds", 3, "Number of passes over the corpus")
	flag.Parse()

	cfg, err := config.LoadFromDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	table := stemmer.DefaultTable()
	if *rules != "" {
		table, err = rulefile.Load(*rules)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
			os.Exit(1)
		}
	}

	words, err := loadWords(*dir, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading corpus: %v\n", err)
		os.Exit(1)
	}
	if len(words) == 0 {
		fmt.Println("Usage: go run cmd/benchmark/main.go -dir ./textos")
		fmt.Println("\nNo words found. Check corpus.includes in brstemmer.yaml.")
		os.Exit(1)
	}

	fmt.Println("RSLP STEMMER BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Words:       %d\n", len(words))
	fmt.Printf("Rules:       %d (%s)\n", table.RuleCount(), table.Fingerprint())
	fmt.Printf("Rounds:      %d\n", *rounds)
	fmt.Println()

	plain := stemmer.New(table)
	stemCache := cache.NewStemCache(cfg.Cache.Size)
	cached := cache.NewCachedStemmer(plain, stemCache)

	plainRate := measure(plain, words, *rounds)
	cachedRate := measure(cached, words, *rounds)
	hits, misses := stemCache.Stats()

	fmt.Printf("Uncached:    %10.0f words/s\n", plainRate)
	fmt.Printf("Cached:      %10.0f words/s (hit rate %.1f%%)\n", cachedRate, 100*float64(hits)/float64(hits+misses))
	fmt.Println(strings.Repeat("-", 70))

	unique := make(map[string]struct{})
	stems := make(map[string]struct{})
	for _, w := range words {
		unique[w] = struct{}{}
		stems[plain.Stem(w)] = struct{}{}
	}
	fmt.Printf("CONFLATION:\n")
	fmt.Printf("  Unique words: %d\n", len(unique))
	fmt.Printf("  Unique stems: %d\n", len(stems))
	fmt.Printf("  Ratio:        %.2f words per stem\n", float64(len(unique))/float64(len(stems)))
}

func loadWords(dir string, cfg *config.Config) ([]string, error) {
	walker, err := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes, 0)
	if err != nil {
		return nil, err
	}
	files, err := walker.Walk(dir)
	if err != nil {
		return nil, err
	}

	tokenizer := analyzer.NewTokenizer(nil, cfg.Tokenize.MinLength, cfg.Tokenize.Stopwords)
	var words []string
	for _, f := range files {
		content, err := fs.ReadFile(f.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", f.RelPath, err)
			continue
		}
		words = append(words, tokenizer.Words(content)...)
	}
	return words, nil
}

func measure(s port.Stemmer, words []string, rounds int) float64 {
	if rounds < 1 {
		rounds = 1
	}
	start := time.Now()
	for r := 0; r < rounds; r++ {
		for _, w := range words {
			s.Stem(w)
		}
	}
	return float64(rounds*len(words)) / time.Since(start).Seconds()
}
