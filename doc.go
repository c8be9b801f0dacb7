// Package llamapun processes corpora of LaTeX-converted scientific
// documents for natural language processing.
//
// The heart of the module is the Document Narrative Model in package dnm: a
// plaintext projection of an XML/HTML tree that keeps byte-exact mappings
// from every plaintext interval back to the node that produced it, under
// configurable normalization (placeholder tokens for formulas and
// citations, skipped apparatus, collapsed whitespace, ASCII folding).
//
// Around the core:
//
//	dnm/       the model, its builder, rule sets and ranges
//	htmltree/  dnm.Node adapter for golang.org/x/net/html trees
//	xmltree/   dnm.Node adapter for github.com/beevik/etree documents
//	corpus/    directory walking, documents, paragraph/sentence/word ranges
//	cmd/       example corpus statistics tools
package llamapun
