package dnm

import (
	"unicode"
	"unicode/utf8"
)

// Range is a half-open [Start, End) byte interval into a DNM's plaintext.
// It is a plain value: copying a Range is the clone operation, and a copy
// stays bound to the same DNM. A Range must not outlive its DNM (and hence
// the underlying tree).
type Range struct {
	Start int
	End   int

	dnm *DNM
}

// DNM returns the model this range indexes into.
func (r Range) DNM() *DNM {
	return r.dnm
}

// IsEmpty reports whether the range covers no text.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

// Text returns the covered plaintext.
func (r Range) Text() string {
	return r.dnm.plaintext[r.Start:r.End]
}

// TextTrimRight returns the covered plaintext with trailing whitespace
// removed. The range itself is unchanged; use Trim to narrow the range.
func (r Range) TextTrimRight() string {
	text := r.Text()
	for len(text) > 0 {
		c, size := utf8.DecodeLastRuneInString(text)
		if !unicode.IsSpace(c) {
			break
		}
		text = text[:len(text)-size]
	}
	return text
}

// Trim returns a new range with leading and trailing whitespace excluded.
// It only narrows offsets; no text is copied. Trimming an all-whitespace
// range yields an empty range, and Trim is idempotent.
func (r Range) Trim() Range {
	text := r.dnm.plaintext[r.Start:r.End]

	lo, hi := 0, len(text)
	for lo < hi {
		c, size := utf8.DecodeRuneInString(text[lo:])
		if !unicode.IsSpace(c) {
			break
		}
		lo += size
	}
	for hi > lo {
		c, size := utf8.DecodeLastRuneInString(text[lo:hi])
		if !unicode.IsSpace(c) {
			break
		}
		hi -= size
	}

	return Range{Start: r.Start + lo, End: r.Start + hi, dnm: r.dnm}
}
