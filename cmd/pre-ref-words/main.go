// Command pre-ref-words reports, over a corpus of HTML5 documents, how
// often each word appears immediately before a cross-reference ("Section
// \ref{..}" style), by inspecting the text preceding span.ltx_ref and
// a.ltx_ref elements. The result is a frequency CSV sorted by count.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kwarc/llamapun/corpus"
	"github.com/kwarc/llamapun/dnm"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "pre-ref-words [corpus-path [statistics-file]]",
		Short:        "Report word frequencies immediately preceding ltx_ref elements",
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			corpusPath, statsPath := "tests/resources", "corpus_statistics_ref.csv"
			if len(args) > 0 {
				corpusPath = args[0]
			}
			if len(args) > 1 {
				statsPath = args[1]
			}
			return run(cmd.Context(), corpusPath, statsPath)
		},
	}
}

func run(ctx context.Context, corpusPath, statsPath string) error {
	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()

	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	c := corpus.New(corpusPath)
	c.Log = logger

	catalog, err := c.CatalogWithParallelWalk(ctx, func(doc *corpus.Document) map[string]uint64 {
		partial := map[string]uint64{}
		for _, ref := range doc.RefNodes() {
			prev := ref.PrevSibling()
			if prev == nil || prev.Kind() != dnm.KindText {
				continue
			}
			if word := precedingWord(prev.Content()); word != "" {
				partial[word]++
			}
		}
		return partial
	})
	if err != nil {
		return err
	}
	logger.Info("ltx_ref statistics finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("distinct_words", len(catalog)))

	return writeCatalog(statsPath, catalog)
}

// precedingWord extracts the trailing alphanumeric run of the text sitting
// just before a reference, lowercased. An empty result means the reference
// is not directly preceded by a word.
func precedingWord(content string) string {
	content = strings.TrimRightFunc(content, unicode.IsSpace)
	end := len(content)
	start := end
	for start > 0 {
		c, size := utf8.DecodeLastRuneInString(content[:start])
		if unicode.IsSpace(c) || (!unicode.IsLetter(c) && !unicode.IsDigit(c)) {
			break
		}
		start -= size
	}
	return strings.ToLower(content[start:end])
}

func writeCatalog(path string, catalog map[string]uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	type entry struct {
		word  string
		count uint64
	}
	entries := make([]entry, 0, len(catalog))
	for word, count := range catalog {
		entries = append(entries, entry{word: word, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].word < entries[j].word
	})

	w := csv.NewWriter(f)
	if err := w.Write([]string{"word", "frequency"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := w.Write([]string{e.word, strconv.FormatUint(e.count, 10)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
