package dnm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwarc/llamapun/dnm"
)

func buildPlain(t *testing.T, doc string) *dnm.DNM {
	t.Helper()
	rules := dnm.Default()
	rules.CollapseWhitespace = false
	model, err := dnm.Build(parse(t, doc), rules)
	require.NoError(t, err)
	return model
}

func TestRangeText(t *testing.T) {
	model := buildPlain(t, `<p>  some words  </p>`)

	r, err := model.Slice(0, len(model.Plaintext()))
	require.NoError(t, err)

	assert.Equal(t, "  some words  ", r.Text())
	assert.Equal(t, "  some words", r.TextTrimRight())
	assert.False(t, r.IsEmpty())
	assert.Same(t, model, r.DNM())
}

func TestRangeTrim(t *testing.T) {
	model := buildPlain(t, `<p>  some words  </p>`)

	r, err := model.Slice(0, len(model.Plaintext()))
	require.NoError(t, err)

	trimmed := r.Trim()
	assert.Equal(t, "some words", trimmed.Text())
	assert.Equal(t, 2, trimmed.Start)
	assert.Equal(t, 12, trimmed.End)

	// Idempotence.
	assert.Equal(t, trimmed, trimmed.Trim())
}

func TestRangeTrimAllWhitespace(t *testing.T) {
	model := buildPlain(t, `<p>   </p>`)

	r, err := model.Slice(0, len(model.Plaintext()))
	require.NoError(t, err)

	trimmed := r.Trim()
	assert.True(t, trimmed.IsEmpty())
	assert.Equal(t, trimmed, trimmed.Trim())
}

func TestRangeTrimMultibyteWhitespace(t *testing.T) {
	// U+00A0 no-break space is whitespace and two bytes long.
	model := buildPlain(t, "<p> word </p>")

	r, err := model.Slice(0, len(model.Plaintext()))
	require.NoError(t, err)

	assert.Equal(t, "word", r.Trim().Text())
	assert.Equal(t, " word", r.TextTrimRight())
}

func TestRangeCopyIsClone(t *testing.T) {
	model := buildPlain(t, `<p>words</p>`)

	r, err := model.Slice(1, 4)
	require.NoError(t, err)

	clone := r
	assert.Equal(t, r.Text(), clone.Text())
	assert.Same(t, r.DNM(), clone.DNM())
}

func TestEmptyRange(t *testing.T) {
	model := buildPlain(t, `<p>words</p>`)

	r, err := model.Slice(2, 2)
	require.NoError(t, err)
	assert.True(t, r.IsEmpty())
	assert.Equal(t, "", r.Text())
	assert.Equal(t, "", r.TextTrimRight())
}
