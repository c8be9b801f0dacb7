// Command corpus-node-model extracts a node model from a corpus of HTML5
// documents: a single token stream naming every element (tag name plus
// sorted classes) in document order, and a frequency report over those
// tokens plus a document_count entry. Elements inside math and table
// elements are not part of the stream.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kwarc/llamapun/corpus"
	"github.com/kwarc/llamapun/dnm"
)

const bufferCapacity = 10 << 20

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "corpus-node-model [corpus-path [model-file [statistics-file]]]",
		Short:        "Extract a node model and node statistics from an HTML5 corpus",
		Args:         cobra.MaximumNArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			corpusPath, modelPath, statsPath := "tests/resources", "node_model.txt", "node_statistics.txt"
			if len(args) > 0 {
				corpusPath = args[0]
			}
			if len(args) > 1 {
				modelPath = args[1]
			}
			if len(args) > 2 {
				statsPath = args[2]
			}
			return run(corpusPath, modelPath, statsPath)
		},
	}
}

func run(corpusPath, modelPath, statsPath string) error {
	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()

	modelFile, err := os.Create(modelPath)
	if err != nil {
		return err
	}
	defer modelFile.Close()
	modelWriter := bufio.NewWriterSize(modelFile, bufferCapacity)

	start := time.Now()
	counts := map[string]uint64{}

	c := corpus.New(corpusPath)
	c.Log = logger
	err = c.Walk(func(doc *corpus.Document) error {
		if err := recordNodeModel(doc.Root(), counts, modelWriter); err != nil {
			return err
		}
		counts["document_count"]++
		if n := counts["document_count"]; n%1000 == 0 {
			logger.Info("processed documents", zap.Uint64("count", n))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := modelWriter.Flush(); err != nil {
		return err
	}
	logger.Info("node model finished", zap.Duration("elapsed", time.Since(start)))

	return writeStatistics(statsPath, counts)
}

// recordNodeModel appends the model token of every element under n to the
// token stream and bumps its counter. Formula and table internals are
// opaque to the model, so those subtrees are not descended.
func recordNodeModel(n dnm.Node, counts map[string]uint64, w *bufio.Writer) error {
	if n.Kind() == dnm.KindText {
		return nil
	}
	if n.Kind() == dnm.KindElement {
		token := modelToken(n)
		counts[token]++
		if _, err := w.WriteString(token); err != nil {
			return err
		}
		if err := w.WriteByte(' '); err != nil {
			return err
		}
		if name := n.Name(); name == "math" || name == "table" {
			return nil
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := recordNodeModel(c, counts, w); err != nil {
			return err
		}
	}
	return nil
}

// modelToken names a node class for the model: the tag name followed by the
// element's class tokens in sorted order, underscore-joined.
func modelToken(n dnm.Node) string {
	classes := strings.Fields(n.Attr("class"))
	sort.Strings(classes)

	var b strings.Builder
	b.WriteString(n.Name())
	for _, class := range classes {
		b.WriteByte('_')
		b.WriteString(class)
	}
	return b.String()
}

func writeStatistics(path string, counts map[string]uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	type entry struct {
		key   string
		count uint64
	}
	entries := make([]entry, 0, len(counts))
	for key, count := range counts {
		entries = append(entries, entry{key: key, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})

	w := bufio.NewWriterSize(f, bufferCapacity)
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s %d\n", e.key, e.count); err != nil {
			return err
		}
	}
	return w.Flush()
}
