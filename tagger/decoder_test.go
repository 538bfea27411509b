package tagger

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/postag/vocabulary/pos"
)

const sennaOutput = "This     \tDT\n" +
	"is       \tVBZ\n" +
	"not      \tRB\n" +
	"a        \tDT\n" +
	"sentence \tNN\n" +
	".        \t.\n" +
	"\n" +
	"(        \t-LRB-\n" +
	"Yes      \tUH\n" +
	",        \t,\n" +
	"it       \tPRP\n" +
	"is       \tVBZ\n" +
	")        \t-RRB-\n"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDecodeAll(t *testing.T) {
	sentences, err := DecodeAll(context.Background(), strings.NewReader(sennaOutput), Options{Logger: discardLogger()})
	require.NoError(t, err)
	require.Len(t, sentences, 2)

	first := sentences[0]
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, []Word{
		{"This", pos.DT},
		{"is", pos.VBZ},
		{"not", pos.RB},
		{"a", pos.DT},
		{"sentence", pos.NN},
		{".", pos.Punct},
	}, first.Words)

	second := sentences[1]
	assert.Equal(t, 8, second.Line)
	require.Len(t, second.Words, 6)
	assert.Equal(t, Word{"(", pos.LRB}, second.Words[0])
	assert.Equal(t, Word{",", pos.COM}, second.Words[2])
	assert.Equal(t, Word{")", pos.RRB}, second.Words[5])
}

func TestDecodeWhitespaceDelimiter(t *testing.T) {
	input := "Apple NNP B-ORG\nsaid VBD O\n:    : O\n\n\n"

	t.Run("default tag column", func(t *testing.T) {
		sentences, err := DecodeAll(context.Background(), strings.NewReader(input), Options{
			Delimiter: DelimiterWhitespace,
			Logger:    discardLogger(),
		})
		require.NoError(t, err)
		require.Len(t, sentences, 1)
		assert.Equal(t, []Word{{"Apple", pos.NNP}, {"said", pos.VBD}, {":", pos.COL}}, sentences[0].Words)
	})

	t.Run("last column is not a tag", func(t *testing.T) {
		_, err := DecodeAll(context.Background(), strings.NewReader(input), Options{
			Delimiter: DelimiterWhitespace,
			TagColumn: LastColumn,
			Logger:    discardLogger(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, pos.ErrUnrecognizedTag)
	})
}

func TestDecodeLastColumn(t *testing.T) {
	input := "Paris\tB-LOC\tNNP\n"

	sentences, err := DecodeAll(context.Background(), strings.NewReader(input), Options{
		TagColumn: LastColumn,
		Logger:    discardLogger(),
	})
	require.NoError(t, err)
	require.Len(t, sentences, 1)
	assert.Equal(t, []Word{{"Paris", pos.NNP}}, sentences[0].Words)
}

func TestDecodeUnrecognizedFail(t *testing.T) {
	input := "The\tDT\nfoo\tZZZ\n"

	_, err := DecodeAll(context.Background(), strings.NewReader(input), Options{Logger: discardLogger()})
	require.Error(t, err)

	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Line)
	assert.Equal(t, "foo\tZZZ", lineErr.Text)

	var tagErr *pos.UnrecognizedTagError
	require.True(t, errors.As(err, &tagErr))
	assert.Equal(t, "ZZZ", tagErr.Value)
	assert.EqualError(t, err, `line 2: unrecognized POS tag "ZZZ"`)
}

func TestDecodeUnrecognizedSkip(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	input := "The\tDT\nfoo\tnn\nsat\tVBD\n"

	sentences, err := DecodeAll(context.Background(), strings.NewReader(input), Options{
		OnUnrecognized: PolicySkip,
		Logger:         logger,
	})
	require.NoError(t, err)
	require.Len(t, sentences, 1)

	assert.Equal(t, []Word{{"The", pos.DT}, {"sat", pos.VBD}}, sentences[0].Words)
	assert.Equal(t, []Skipped{{Line: 2, Text: "foo", Value: "nn"}}, sentences[0].Skipped)
	assert.Contains(t, logs.String(), "Skipping token with unrecognized tag")
	assert.Contains(t, logs.String(), "tag=nn")
}

func TestDecodeTagIsNotNormalized(t *testing.T) {
	// Column padding is trimmed but the tag itself must match exactly.
	_, err := DecodeAll(context.Background(), strings.NewReader("word\tnnp\n"), Options{Logger: discardLogger()})
	assert.ErrorIs(t, err, pos.ErrUnrecognizedTag)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
	}{
		{"missing tag column", "word\n", Options{}},
		{"spaces only under tab delimiter", "word NN\n", Options{}},
		{"column out of range", "word\tNN\n", Options{TagColumn: 3}},
		{"empty word", "\tNN\n", Options{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Logger = discardLogger()
			tt.opts.OnUnrecognized = PolicySkip
			_, err := DecodeAll(context.Background(), strings.NewReader(tt.input), tt.opts)
			assert.ErrorIs(t, err, ErrMalformedLine)
		})
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	sentences, err := DecodeAll(context.Background(), strings.NewReader("\n\n  \n"), Options{})
	require.NoError(t, err)
	assert.Empty(t, sentences)
}

func TestDecoderInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"delimiter", Options{Delimiter: "comma"}},
		{"policy", Options{OnUnrecognized: "coerce"}},
		{"tag column", Options{TagColumn: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.opts.Validate())

			d := NewDecoder(strings.NewReader("a\tDT\n"), tt.opts)
			_, err := d.Next(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestDecoderStickyError(t *testing.T) {
	d := NewDecoder(strings.NewReader("a\tDT\n\nb\tBAD\n\nc\tNN\n"), Options{Logger: discardLogger()})
	ctx := context.Background()

	s, err := d.Next(ctx)
	require.NoError(t, err)
	assert.Len(t, s.Words, 1)

	_, err = d.Next(ctx)
	require.ErrorIs(t, err, pos.ErrUnrecognizedTag)

	_, err = d.Next(ctx)
	assert.ErrorIs(t, err, pos.ErrUnrecognizedTag)
}

func TestDecodeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DecodeAll(ctx, strings.NewReader(sennaOutput), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	input := "The\tDT\ncat\tNN\n\nA\tDT\n?\t???\n"

	_, err := DecodeAll(context.Background(), strings.NewReader(input), Options{
		OnUnrecognized: PolicySkip,
		Logger:         discardLogger(),
		Metrics:        m,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.words.WithLabelValues("DT")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.words.WithLabelValues("NN")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.unrecognized))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.sentences))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observeWord(pos.NN)
		m.observeUnrecognized()
		m.observeSentence()
	})
}
