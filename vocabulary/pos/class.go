package pos

// Class is a coarse grouping of tags.
type Class string

const (
	// ClassNoun covers common and proper nouns.
	ClassNoun Class = "noun"

	// ClassVerb covers verb forms and modals.
	ClassVerb Class = "verb"

	// ClassAdjective covers adjectives and their degrees.
	ClassAdjective Class = "adjective"

	// ClassAdverb covers adverbs including wh-adverbs.
	ClassAdverb Class = "adverb"

	// ClassPronoun covers personal and wh-pronouns.
	ClassPronoun Class = "pronoun"

	// ClassDeterminer covers determiners and predeterminers.
	ClassDeterminer Class = "determiner"

	// ClassFunction covers conjunctions, prepositions, particles and other
	// closed-class function words.
	ClassFunction Class = "function"

	// ClassPunctuation covers punctuation, brackets, quotes and currency signs.
	ClassPunctuation Class = "punctuation"

	// ClassOther covers numerals, symbols, foreign words and interjections.
	ClassOther Class = "other"

	// ClassSentinel covers NotSet, Unavailable and Padding.
	ClassSentinel Class = "sentinel"
)

// Classes lists every class in display order.
var Classes = []Class{
	ClassNoun,
	ClassVerb,
	ClassAdjective,
	ClassAdverb,
	ClassPronoun,
	ClassDeterminer,
	ClassFunction,
	ClassPunctuation,
	ClassOther,
	ClassSentinel,
}

// String returns the string representation of the class.
func (c Class) String() string {
	return string(c)
}
