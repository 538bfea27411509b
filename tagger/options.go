// Package tagger reads and writes the column format produced by the Senna
// tagger and resolves its tag column into typed pos.Tag values.
//
// Each line holds one token: the word in the first column, followed by one or
// more annotation columns. A blank line ends a sentence:
//
//	The      DT
//	cat      NN
//	,        ,
//	sat      VBD
//	.        .
//
// Columns are split before the tag is looked up, so the punctuation tags
// "," and ":" are data, never delimiters.
package tagger

import (
	"fmt"
	"log/slog"

	"github.com/c360studio/postag/vocabulary/pos"
)

// Delimiter selects how a line is split into columns.
type Delimiter string

const (
	// DelimiterTab splits on tab characters and trims the space padding
	// around each column.
	DelimiterTab Delimiter = "tab"

	// DelimiterWhitespace splits on runs of spaces and tabs.
	DelimiterWhitespace Delimiter = "whitespace"
)

// IsValid checks if a delimiter string is a known delimiter.
func (d Delimiter) IsValid() bool {
	switch d {
	case DelimiterTab, DelimiterWhitespace:
		return true
	}
	return false
}

// Policy decides what happens to a token whose tag column is not in the
// vocabulary.
type Policy string

const (
	// PolicyFail stops decoding with an error.
	PolicyFail Policy = "fail"

	// PolicySkip drops the token, logs it and records it on the sentence.
	PolicySkip Policy = "skip"
)

// IsValid checks if a policy string is a known policy.
func (p Policy) IsValid() bool {
	switch p {
	case PolicyFail, PolicySkip:
		return true
	}
	return false
}

// LastColumn selects the final column of each line as the tag column.
const LastColumn = -1

// Options configures a Decoder.
type Options struct {
	// Delimiter defaults to DelimiterTab.
	Delimiter Delimiter

	// TagColumn is the zero-based index of the tag column, or LastColumn.
	// Column 0 is always the word; zero means the default of 1.
	TagColumn int

	// OnUnrecognized defaults to PolicyFail.
	OnUnrecognized Policy

	// Table defaults to pos.Default().
	Table *pos.Table

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Metrics is optional.
	Metrics *Metrics
}

func (o Options) withDefaults() Options {
	if o.Delimiter == "" {
		o.Delimiter = DelimiterTab
	}
	if o.TagColumn == 0 {
		o.TagColumn = 1
	}
	if o.OnUnrecognized == "" {
		o.OnUnrecognized = PolicyFail
	}
	if o.Table == nil {
		o.Table = pos.Default()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Validate checks the options after defaults are applied.
func (o Options) Validate() error {
	o = o.withDefaults()
	if !o.Delimiter.IsValid() {
		return fmt.Errorf("unknown delimiter %q", o.Delimiter)
	}
	if !o.OnUnrecognized.IsValid() {
		return fmt.Errorf("unknown unrecognized-tag policy %q", o.OnUnrecognized)
	}
	if o.TagColumn < 1 && o.TagColumn != LastColumn {
		return fmt.Errorf("tag column must be at least 1 or %d, got %d", LastColumn, o.TagColumn)
	}
	return nil
}
