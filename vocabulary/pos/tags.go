package pos

import "strconv"

// Tag is a part-of-speech tag. The zero value is NotSet.
type Tag uint8

const (
	// NotSet marks a tag that has not been assigned.
	NotSet Tag = iota

	CC   // coordinating conjunction (and, or)
	CD   // cardinal numeral
	COL  // colon
	COM  // comma
	DOL  // dollar sign
	DT   // determiner (this, that)
	EX   // existential there
	FW   // foreign word
	IN   // preposition or subordinating conjunction
	JJ   // adjective
	JJR  // comparative adjective
	JJS  // superlative adjective
	LRB  // open parenthesis
	LS   // list item marker
	MD   // modal auxiliary (can, should, will)
	NN   // singular or mass noun
	NNP  // singular proper noun
	NNPS // plural proper noun
	NNS  // plural noun

	// Padding fills fixed-width input windows.
	Padding

	PDT     // predeterminer
	POS     // possessive ending
	Pound   // pound sign
	PRP     // personal pronoun
	PRPPoss // possessive pronoun
	Punct   // sentence-final punctuation
	QuotB   // closing quotation mark
	QuotS   // opening quotation mark
	RB      // adverb
	RBR     // comparative adverb
	RBS     // superlative adverb
	RP      // particle (about, off, up)
	RRB     // close parenthesis
	SYM     // symbol
	TO      // to
	UH      // interjection

	// Unavailable marks a token the tagger could not tag.
	Unavailable

	VB     // verb, base form
	VBD    // verb, past tense
	VBG    // verb, gerund or present participle
	VBN    // verb, past participle
	VBP    // verb, non-3rd person singular present
	VBZ    // verb, 3rd person singular present
	WDT    // wh-determiner (what, which)
	WP     // wh-pronoun (who, what)
	WPPoss // possessive wh-pronoun (whose)
	WRB    // wh-adverb (how, where, when)

	tagCount
)

// tagInfo is the single source of truth for both lookup directions.
type tagInfo struct {
	name        string
	canonical   string
	description string
	class       Class
}

// tagTable is indexed by Tag. The array length pins it to tagCount, so a
// constant added above without an entry here leaves an empty row that
// TestTagTableComplete reports.
var tagTable = [tagCount]tagInfo{
	NotSet:      {"NotSet", "POS IS NOT SET", "tag not set", ClassSentinel},
	CC:          {"CC", "CC", "coordinating conjunction", ClassFunction},
	CD:          {"CD", "CD", "cardinal numeral", ClassOther},
	COL:         {"COL", ":", "colon", ClassPunctuation},
	COM:         {"COM", ",", "comma", ClassPunctuation},
	DOL:         {"DOL", "$", "dollar sign", ClassPunctuation},
	DT:          {"DT", "DT", "determiner", ClassDeterminer},
	EX:          {"EX", "EX", "existential there", ClassOther},
	FW:          {"FW", "FW", "foreign word", ClassOther},
	IN:          {"IN", "IN", "preposition or subordinating conjunction", ClassFunction},
	JJ:          {"JJ", "JJ", "adjective", ClassAdjective},
	JJR:         {"JJR", "JJR", "comparative adjective", ClassAdjective},
	JJS:         {"JJS", "JJS", "superlative adjective", ClassAdjective},
	LRB:         {"LRB", "-LRB-", "open parenthesis", ClassPunctuation},
	LS:          {"LS", "LS", "list item marker", ClassOther},
	MD:          {"MD", "MD", "modal auxiliary", ClassVerb},
	NN:          {"NN", "NN", "singular or mass noun", ClassNoun},
	NNP:         {"NNP", "NNP", "singular proper noun", ClassNoun},
	NNPS:        {"NNPS", "NNPS", "plural proper noun", ClassNoun},
	NNS:         {"NNS", "NNS", "plural noun", ClassNoun},
	Padding:     {"Padding", "PADDING", "padding", ClassSentinel},
	PDT:         {"PDT", "PDT", "predeterminer", ClassDeterminer},
	POS:         {"POS", "POS", "possessive ending", ClassFunction},
	Pound:       {"Pound", "#", "pound sign", ClassPunctuation},
	PRP:         {"PRP", "PRP", "personal pronoun", ClassPronoun},
	PRPPoss:     {"PRPPoss", "PRP$", "possessive pronoun", ClassPronoun},
	Punct:       {"Punct", ".", "sentence-final punctuation", ClassPunctuation},
	QuotB:       {"QuotB", "''", "closing quotation mark", ClassPunctuation},
	QuotS:       {"QuotS", "``", "opening quotation mark", ClassPunctuation},
	RB:          {"RB", "RB", "adverb", ClassAdverb},
	RBR:         {"RBR", "RBR", "comparative adverb", ClassAdverb},
	RBS:         {"RBS", "RBS", "superlative adverb", ClassAdverb},
	RP:          {"RP", "RP", "particle", ClassFunction},
	RRB:         {"RRB", "-RRB-", "close parenthesis", ClassPunctuation},
	SYM:         {"SYM", "SYM", "symbol", ClassOther},
	TO:          {"TO", "TO", "to", ClassFunction},
	UH:          {"UH", "UH", "interjection", ClassOther},
	Unavailable: {"Unavailable", "UNAVAILABLE", "tag unavailable", ClassSentinel},
	VB:          {"VB", "VB", "verb, base form", ClassVerb},
	VBD:         {"VBD", "VBD", "verb, past tense", ClassVerb},
	VBG:         {"VBG", "VBG", "verb, gerund or present participle", ClassVerb},
	VBN:         {"VBN", "VBN", "verb, past participle", ClassVerb},
	VBP:         {"VBP", "VBP", "verb, non-3rd person singular present", ClassVerb},
	VBZ:         {"VBZ", "VBZ", "verb, 3rd person singular present", ClassVerb},
	WDT:         {"WDT", "WDT", "wh-determiner", ClassDeterminer},
	WP:          {"WP", "WP", "wh-pronoun", ClassPronoun},
	WPPoss:      {"WPPoss", "WP$", "possessive wh-pronoun", ClassPronoun},
	WRB:         {"WRB", "WRB", "wh-adverb", ClassAdverb},
}

// String returns the canonical string for the tag, the exact token the
// tagger writes for it. Values outside the vocabulary render as "Tag(N)".
func (t Tag) String() string {
	if !t.IsValid() {
		return "Tag(" + strconv.Itoa(int(t)) + ")"
	}
	return tagTable[t].canonical
}

// Name returns the Go identifier of the tag, e.g. "PRPPoss" for PRP$.
func (t Tag) Name() string {
	if !t.IsValid() {
		return t.String()
	}
	return tagTable[t].name
}

// Description returns a short human-readable gloss of the tag.
func (t Tag) Description() string {
	if !t.IsValid() {
		return ""
	}
	return tagTable[t].description
}

// Class returns the coarse grammatical class of the tag.
func (t Tag) Class() Class {
	if !t.IsValid() {
		return ""
	}
	return tagTable[t].class
}

// IsValid reports whether t is one of the declared tags.
func (t Tag) IsValid() bool {
	return t < tagCount
}

// IsSentinel reports whether t is NotSet, Unavailable or Padding.
func (t Tag) IsSentinel() bool {
	switch t {
	case NotSet, Unavailable, Padding:
		return true
	}
	return false
}

// parseable reports whether the tag belongs in the reverse table.
// NotSet is never written by the tagger.
func (t Tag) parseable() bool {
	return t.IsValid() && t != NotSet
}

// All returns every declared tag in declaration order, NotSet first.
func All() []Tag {
	tags := make([]Tag, 0, tagCount)
	for t := Tag(0); t < tagCount; t++ {
		tags = append(tags, t)
	}
	return tags
}
