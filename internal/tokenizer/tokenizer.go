// Package tokenizer segments plaintext into sentence and word spans. Spans
// are byte offsets into the input string, so callers can lift them straight
// into DNM ranges.
package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// Span is a half-open [Start, End) byte interval into the tokenized text.
type Span struct {
	Start int
	End   int
}

// Sentences splits text into sentence spans. A sentence ends at a run of
// '.', '!' or '?' that is followed by whitespace or the end of the text.
// Whitespace between sentences belongs to neither; all-whitespace segments
// produce no span.
func Sentences(text string) []Span {
	var spans []Span
	start := 0

	flush := func(end int) {
		for start < end {
			c, size := utf8.DecodeRuneInString(text[start:end])
			if !unicode.IsSpace(c) {
				break
			}
			start += size
		}
		if start < end {
			spans = append(spans, Span{Start: start, End: end})
		}
		start = end
	}

	for i := 0; i < len(text); i++ {
		if !isSentenceEnd(text[i]) {
			continue
		}
		// Swallow the whole punctuation run ("?!", "...").
		end := i + 1
		for end < len(text) && isSentenceEnd(text[end]) {
			end++
		}
		c, _ := utf8.DecodeRuneInString(text[end:])
		if end < len(text) && !unicode.IsSpace(c) {
			i = end - 1
			continue
		}
		flush(end)
		i = end - 1
	}
	flush(len(text))

	return spans
}

func isSentenceEnd(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// Words splits text into word spans: maximal runs of letters and digits,
// allowing hyphens and apostrophes between alphanumeric characters
// ("non-trivial", "it's"). Punctuation and whitespace separate words.
func Words(text string) []Span {
	var spans []Span
	var start = -1
	prevAlnum := false

	for i, c := range text {
		switch {
		case unicode.IsLetter(c) || unicode.IsDigit(c):
			if start < 0 {
				start = i
			}
			prevAlnum = true
		case (c == '-' || c == '\'') && prevAlnum && nextIsAlnum(text[i+1:]):
			// connector inside a word
			prevAlnum = false
		default:
			if start >= 0 {
				spans = append(spans, Span{Start: start, End: i})
				start = -1
			}
			prevAlnum = false
		}
	}
	if start >= 0 {
		spans = append(spans, Span{Start: start, End: len(text)})
	}

	return spans
}

func nextIsAlnum(rest string) bool {
	c, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}
