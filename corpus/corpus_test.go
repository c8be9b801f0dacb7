package corpus_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/kwarc/llamapun/corpus"
	"github.com/kwarc/llamapun/dnm"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDocumentPaths(t *testing.T) {
	c := corpus.New("testdata")
	paths, err := c.DocumentPaths()
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join("testdata", "sample1.html"), paths[0])
	assert.Equal(t, filepath.Join("testdata", "sub", "sample2.html"), paths[1])
}

func TestWalkIteratesEveryDocument(t *testing.T) {
	c := corpus.New("testdata")

	var docCount, wordCount int
	err := c.Walk(func(doc *corpus.Document) error {
		docCount++
		for _, paragraph := range doc.Paragraphs() {
			for _, sentence := range corpus.Sentences(paragraph) {
				for _, word := range corpus.Words(sentence) {
					wordCount++
					assert.False(t, word.IsEmpty())
				}
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, docCount)
	assert.Greater(t, wordCount, 30)
}

func TestLoadDocument(t *testing.T) {
	c := corpus.New("testdata")
	doc, err := c.LoadDocument(filepath.Join("testdata", "sample1.html"))
	require.NoError(t, err)

	plaintext := doc.Model.Plaintext()
	// The scientific rules replace formulas, drop the bibliography, and
	// fold everything to single-spaced ASCII.
	assert.Contains(t, plaintext, "Let MathFormula be a finite group")
	assert.Contains(t, plaintext, "CiteExpression")
	assert.NotContains(t, plaintext, "Artin")
	assert.NotContains(t, plaintext, "  ")

	paragraphs := doc.Paragraphs()
	require.Len(t, paragraphs, 2)
	assert.Contains(t, paragraphs[0].Text(), "cyclic")
	assert.Contains(t, paragraphs[1].Text(), "converse")

	sentences := doc.Sentences()
	assert.GreaterOrEqual(t, len(sentences), 4)
}

func TestTableContentIsSkipped(t *testing.T) {
	c := corpus.New("testdata")
	doc, err := c.LoadDocument(filepath.Join("testdata", "sub", "sample2.html"))
	require.NoError(t, err)

	assert.NotContains(t, doc.Model.Plaintext(), "skipped layout")
}

func TestRefNodes(t *testing.T) {
	c := corpus.New("testdata")
	doc, err := c.LoadDocument(filepath.Join("testdata", "sample1.html"))
	require.NoError(t, err)

	refs := doc.RefNodes()
	require.Len(t, refs, 2)
	assert.Equal(t, "span", refs[0].Name())
	assert.Equal(t, "a", refs[1].Name())

	// The word before each reference, the statistic pre-ref-words counts.
	prev := refs[0].PrevSibling()
	require.NotNil(t, prev)
	assert.Equal(t, dnm.KindText, prev.Kind())
	assert.True(t, strings.HasSuffix(strings.TrimRight(prev.Content(), " "), "Lemma"))
}

func TestCatalogWithParallelWalk(t *testing.T) {
	c := corpus.New("testdata")
	c.Workers = 2

	catalog, err := c.CatalogWithParallelWalk(context.Background(), func(doc *corpus.Document) map[string]uint64 {
		partial := map[string]uint64{"documents": 1}
		for _, paragraph := range doc.Paragraphs() {
			for range corpus.Words(paragraph) {
				partial["words"]++
			}
		}
		return partial
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), catalog["documents"])
	assert.Greater(t, catalog["words"], uint64(30))
}

func TestCatalogStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := corpus.New("testdata")
	_, err := c.CatalogWithParallelWalk(ctx, func(doc *corpus.Document) map[string]uint64 {
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalkMissingCorpus(t *testing.T) {
	c := corpus.New(filepath.Join("testdata", "does-not-exist"))
	err := c.Walk(func(*corpus.Document) error { return nil })
	assert.Error(t, err)
}

func TestWordsOverRange(t *testing.T) {
	c := corpus.New("testdata")
	doc, err := c.LoadDocument(filepath.Join("testdata", "sub", "sample2.html"))
	require.NoError(t, err)

	paragraphs := doc.Paragraphs()
	require.Len(t, paragraphs, 1)

	words := corpus.Words(paragraphs[0])
	require.NotEmpty(t, words)
	assert.Equal(t, "Every", words[0].Text())

	for _, w := range words {
		assert.Equal(t, w.Text(), strings.TrimSpace(w.Text()))
	}
}
