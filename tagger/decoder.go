package tagger

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/c360studio/postag/vocabulary/pos"
)

// Word is one tagged token.
type Word struct {
	Text string  `json:"text"`
	Tag  pos.Tag `json:"tag"`
}

// Skipped is a token dropped under PolicySkip.
type Skipped struct {
	Line  int    `json:"line"`
	Text  string `json:"text"`
	Value string `json:"value"`
}

// Sentence is a run of tokens terminated by a blank line or end of input.
type Sentence struct {
	// Line is the input line of the first token.
	Line    int       `json:"line"`
	Words   []Word    `json:"words"`
	Skipped []Skipped `json:"skipped,omitempty"`
}

// Decoder reads sentences from tagger output.
type Decoder struct {
	scanner *bufio.Scanner
	opts    Options
	line    int
	err     error
}

// NewDecoder returns a decoder reading from r. Invalid options surface as an
// error from the first call to Next.
func NewDecoder(r io.Reader, opts Options) *Decoder {
	d := &Decoder{
		scanner: bufio.NewScanner(r),
		opts:    opts.withDefaults(),
	}
	if err := opts.Validate(); err != nil {
		d.err = fmt.Errorf("invalid decoder options: %w", err)
	}
	return d
}

// Next returns the next sentence, or io.EOF when the input is exhausted.
// Once Next returns an error every later call returns the same error.
func (d *Decoder) Next(ctx context.Context) (*Sentence, error) {
	if d.err != nil {
		return nil, d.err
	}
	s, err := d.next(ctx)
	if err != nil {
		d.err = err
		return nil, err
	}
	return s, nil
}

func (d *Decoder) next(ctx context.Context) (*Sentence, error) {
	var s *Sentence
	for d.scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		d.line++
		text := d.scanner.Text()

		if strings.TrimSpace(text) == "" {
			if s != nil {
				break
			}
			continue
		}
		if s == nil {
			s = &Sentence{Line: d.line, Words: []Word{}}
		}
		if err := d.decodeLine(s, text); err != nil {
			return nil, err
		}
	}
	if err := d.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tagger output: %w", err)
	}
	if s == nil {
		return nil, io.EOF
	}

	d.opts.Metrics.observeSentence()
	d.opts.Logger.Debug("Decoded sentence",
		slog.Int("line", s.Line),
		slog.Int("words", len(s.Words)),
		slog.Int("skipped", len(s.Skipped)))
	return s, nil
}

func (d *Decoder) decodeLine(s *Sentence, text string) error {
	cols := d.split(text)
	col := d.opts.TagColumn
	if col == LastColumn {
		col = len(cols) - 1
	}
	if col < 1 || col >= len(cols) {
		return &LineError{Line: d.line, Text: text, Err: fmt.Errorf("%w: want tag in column %d, have %d columns", ErrMalformedLine, col, len(cols))}
	}

	word, value := cols[0], cols[col]
	if word == "" {
		return &LineError{Line: d.line, Text: text, Err: fmt.Errorf("%w: empty word column", ErrMalformedLine)}
	}
	tag, err := d.opts.Table.Parse(value)
	if err != nil {
		d.opts.Metrics.observeUnrecognized()
		if d.opts.OnUnrecognized == PolicyFail {
			return &LineError{Line: d.line, Text: text, Err: err}
		}
		d.opts.Logger.Warn("Skipping token with unrecognized tag",
			slog.Int("line", d.line),
			slog.String("word", word),
			slog.String("tag", value))
		s.Skipped = append(s.Skipped, Skipped{Line: d.line, Text: word, Value: value})
		return nil
	}

	d.opts.Metrics.observeWord(tag)
	s.Words = append(s.Words, Word{Text: word, Tag: tag})
	return nil
}

func (d *Decoder) split(text string) []string {
	if d.opts.Delimiter == DelimiterWhitespace {
		return strings.Fields(text)
	}
	cols := strings.Split(text, "\t")
	for i, c := range cols {
		cols[i] = strings.Trim(c, " ")
	}
	return cols
}

// DecodeAll reads every sentence from r.
func DecodeAll(ctx context.Context, r io.Reader, opts Options) ([]Sentence, error) {
	d := NewDecoder(r, opts)
	var sentences []Sentence
	for {
		s, err := d.Next(ctx)
		if errors.Is(err, io.EOF) {
			return sentences, nil
		}
		if err != nil {
			return sentences, err
		}
		sentences = append(sentences, *s)
	}
}
