package tokenizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kwarc/llamapun/internal/tokenizer"
)

func texts(s string, spans []tokenizer.Span) []string {
	out := make([]string, 0, len(spans))
	for _, span := range spans {
		out = append(out, s[span.Start:span.End])
	}
	return out
}

func TestSentences(t *testing.T) {
	s := "Let G be a group. Is it abelian? See MathFormula below."
	assert.Equal(t, []string{
		"Let G be a group.",
		"Is it abelian?",
		"See MathFormula below.",
	}, texts(s, tokenizer.Sentences(s)))
}

func TestSentencesPunctuationRuns(t *testing.T) {
	s := "Really?! Yes... and no."
	assert.Equal(t, []string{
		"Really?!",
		"Yes...",
		"and no.",
	}, texts(s, tokenizer.Sentences(s)))
}

func TestSentencesNoTrailingPunctuation(t *testing.T) {
	s := "First sentence. An unterminated fragment"
	assert.Equal(t, []string{
		"First sentence.",
		"An unterminated fragment",
	}, texts(s, tokenizer.Sentences(s)))
}

func TestSentencesInternalPeriod(t *testing.T) {
	// A period not followed by whitespace does not split.
	s := "Version 2.5 shipped. Done."
	assert.Equal(t, []string{
		"Version 2.5 shipped.",
		"Done.",
	}, texts(s, tokenizer.Sentences(s)))
}

func TestSentencesEmptyAndBlank(t *testing.T) {
	assert.Empty(t, tokenizer.Sentences(""))
	assert.Empty(t, tokenizer.Sentences("   "))
}

func TestWords(t *testing.T) {
	s := "A non-trivial result, it's (mostly) new."
	assert.Equal(t, []string{
		"A", "non-trivial", "result", "it's", "mostly", "new",
	}, texts(s, tokenizer.Words(s)))
}

func TestWordsHyphenEdges(t *testing.T) {
	s := "pre- and -post a--b"
	assert.Equal(t, []string{"pre", "and", "post", "a", "b"}, texts(s, tokenizer.Words(s)))
}

func TestWordsEmpty(t *testing.T) {
	assert.Empty(t, tokenizer.Words(""))
	assert.Empty(t, tokenizer.Words(" ... "))
}
