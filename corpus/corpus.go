// Package corpus walks directories of converted scientific documents,
// builds one DNM per document, and exposes paragraph, sentence and word
// ranges over them. Parallelism lives here, one document per worker; the
// DNM builder itself stays single-threaded.
package corpus

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kwarc/llamapun/dnm"
	"github.com/kwarc/llamapun/htmltree"
)

// Corpus describes a directory tree of documents to process. Fields may be
// adjusted between New and the first walk; a walking Corpus is read-only.
type Corpus struct {
	// Path is the corpus root directory.
	Path string

	// Rules is the rule set every document's DNM is built with.
	Rules dnm.RuleSet

	// Extension selects corpus files, ".html" by default.
	Extension string

	// Workers bounds the parallel walk's concurrency.
	Workers int

	// Log receives per-document progress at debug level.
	Log *zap.Logger
}

// New returns a corpus over path with the scientific rule set, documents
// selected by the ".html" extension, and one worker per CPU.
func New(path string) *Corpus {
	return &Corpus{
		Path:      path,
		Rules:     dnm.Scientific(),
		Extension: ".html",
		Workers:   runtime.NumCPU(),
		Log:       zap.NewNop(),
	}
}

// DocumentPaths returns the corpus files in lexical walk order.
func (c *Corpus) DocumentPaths() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(c.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, c.Extension) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("corpus: walk %s: %w", c.Path, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadDocument parses one file and builds its DNM under the corpus rules.
func (c *Corpus) LoadDocument(path string) (*Document, error) {
	root, err := htmltree.ParseFile(path)
	if err != nil {
		return nil, err
	}
	model, err := dnm.Build(root, c.Rules)
	if err != nil {
		return nil, fmt.Errorf("corpus: build %s: %w", path, err)
	}
	return &Document{Path: path, Model: model, root: root}, nil
}

// Walk loads each document in turn and hands it to fn. The first error from
// loading or from fn stops the walk.
func (c *Corpus) Walk(fn func(*Document) error) error {
	paths, err := c.DocumentPaths()
	if err != nil {
		return err
	}
	for _, path := range paths {
		c.Log.Debug("processing document", zap.String("path", path))
		doc, err := c.LoadDocument(path)
		if err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			return err
		}
	}
	return nil
}

// CatalogWithParallelWalk processes documents on a bounded worker pool.
// Each worker owns its document's tree and DNM; fn returns a partial
// frequency catalog, and the partials are summed into the result. The walk
// stops at the first load error or context cancellation.
func (c *Corpus) CatalogWithParallelWalk(ctx context.Context, fn func(*Document) map[string]uint64) (map[string]uint64, error) {
	paths, err := c.DocumentPaths()
	if err != nil {
		return nil, err
	}

	workers := c.Workers
	if workers < 1 {
		workers = 1
	}

	catalog := make(map[string]uint64)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.Log.Debug("processing document", zap.String("path", path))
			doc, err := c.LoadDocument(path)
			if err != nil {
				return err
			}
			partial := fn(doc)

			mu.Lock()
			for key, count := range partial {
				catalog[key] += count
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return catalog, nil
}
