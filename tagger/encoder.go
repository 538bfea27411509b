package tagger

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/c360studio/postag/vocabulary/pos"
)

// Encoder writes sentences in the two-column format the Decoder reads.
type Encoder struct {
	w     *bufio.Writer
	delim Delimiter
}

// NewEncoder returns an encoder writing to w. An unknown delimiter falls back
// to DelimiterTab.
func NewEncoder(w io.Writer, delim Delimiter) *Encoder {
	if !delim.IsValid() {
		delim = DelimiterTab
	}
	return &Encoder{w: bufio.NewWriter(w), delim: delim}
}

// Encode writes one sentence followed by a blank line. Nothing is written
// if any word or tag in the sentence cannot be encoded.
func (e *Encoder) Encode(s Sentence) error {
	for i, word := range s.Words {
		if err := e.check(word); err != nil {
			return fmt.Errorf("word %d: %w", i, err)
		}
	}

	sep := "\t"
	if e.delim == DelimiterWhitespace {
		sep = " "
	}
	for _, word := range s.Words {
		if _, err := e.w.WriteString(word.Text + sep + word.Tag.String() + "\n"); err != nil {
			return fmt.Errorf("write word: %w", err)
		}
	}
	if err := e.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write sentence break: %w", err)
	}
	return e.w.Flush()
}

func (e *Encoder) check(word Word) error {
	if word.Tag == pos.NotSet || !word.Tag.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnencodableTag, word.Tag.Name())
	}
	if word.Text == "" {
		return fmt.Errorf("%w: empty", ErrUnencodableWord)
	}

	var bad func(rune) bool
	switch e.delim {
	case DelimiterWhitespace:
		bad = unicode.IsSpace
	default:
		// Leading or trailing spaces would be trimmed as column padding.
		if strings.TrimSpace(word.Text) != word.Text {
			return fmt.Errorf("%w: %q has surrounding space", ErrUnencodableWord, word.Text)
		}
		bad = func(r rune) bool { return r == '\t' || r == '\n' || r == '\r' }
	}
	if strings.ContainsFunc(word.Text, bad) {
		return fmt.Errorf("%w: %q contains a delimiter", ErrUnencodableWord, word.Text)
	}
	return nil
}
