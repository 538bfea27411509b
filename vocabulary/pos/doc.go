// Package pos provides the part-of-speech tag vocabulary emitted by the Senna tagger.
//
// The vocabulary is closed: every tag the tagger can produce is a [Tag]
// constant, and every constant has exactly one canonical string, the literal
// token the tagger writes in its output. Most canonical strings are the Penn
// Treebank mnemonic ("NNP", "VBZ"), but punctuation and bracket tags use the
// tagger's own spelling:
//
//	COM     ","
//	COL     ":"
//	PRPPoss "PRP$"
//	LRB     "-LRB-"
//	QuotS   "``"
//
// # Sentinels
//
// Three tags never name a grammatical category:
//   - NotSet: the zero value, a tag that has not been assigned yet
//   - Unavailable: the tagger produced no tag for the token
//   - Padding: the marker used to fill fixed-width input windows
//
// NotSet renders as "POS IS NOT SET" but is never accepted as input.
// Unavailable and Padding are part of the tagger's output vocabulary and
// parse back to themselves.
//
// # Usage
//
// Rendering a tag is a method call and cannot fail:
//
//	fmt.Println(pos.PRPPoss) // PRP$
//
// Reading raw tagger output goes through the reverse table. The package-level
// helpers share one table built on first use:
//
//	tag, err := pos.Parse(column)
//	if errors.Is(err, pos.ErrUnrecognizedTag) {
//	    // the tagger emitted something this vocabulary does not know
//	}
//
// Lookups are exact and case-sensitive. Callers that split tagger output into
// columns must do so before calling Parse; the canonical strings for ","
// and ":" are single punctuation characters and are not delimiters.
package pos
