package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/c360studio/postag/config"
	"github.com/c360studio/postag/tagger"
)

// parsedSentence is one line of JSON output.
type parsedSentence struct {
	RunID  string `json:"run_id"`
	Source string `json:"source"`
	tagger.Sentence
}

func parseCmd(a *app) *cobra.Command {
	var (
		format         string
		delimiter      string
		tagColumn      int
		onUnrecognized string
	)

	cmd := &cobra.Command{
		Use:   "parse [FILE|GLOB...]",
		Short: "Decode tagger output into typed POS tags",
		Long: `Decode column-formatted tagger output and print each word with its tag.

Reads standard input when no arguments are given. Arguments may be file
paths or doublestar globs such as 'out/**/*.pos'.

Text output prints one word per line as "word" - TAG, with a blank line
between sentences. JSON output prints one sentence object per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			override := config.IngestConfig{}
			if flags.Changed("delimiter") {
				override.Delimiter = delimiter
			}
			if flags.Changed("tag-column") {
				override.TagColumn = tagColumn
			}
			if flags.Changed("on-unrecognized") {
				override.OnUnrecognized = onUnrecognized
			}
			a.cfg.Merge(&config.Config{Ingest: override})
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q", format)
			}

			return a.runParse(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json)")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", "Column delimiter (tab, whitespace)")
	cmd.Flags().IntVar(&tagColumn, "tag-column", 0, "Zero-based tag column, -1 for the last column")
	cmd.Flags().StringVar(&onUnrecognized, "on-unrecognized", "", "Unrecognized tag policy (fail, skip)")
	return cmd
}

func (a *app) runParse(ctx context.Context, stdin io.Reader, out io.Writer, patterns []string, format string) error {
	runID := uuid.New().String()
	logger := a.logger.With(slog.String("run_id", runID))

	sources, err := expandInputs(patterns)
	if err != nil {
		return err
	}

	opts := a.cfg.Ingest.Options()
	opts.Logger = logger

	if addr := a.cfg.Metrics.Addr; addr != "" {
		reg := prometheus.NewRegistry()
		opts.Metrics = tagger.NewMetrics(reg)
		_, stop, err := serveMetrics(addr, reg, logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	w := &sentenceWriter{out: out, format: format, runID: runID}
	total := 0
	for _, src := range sources {
		n, err := decodeSource(ctx, src, stdin, opts, w)
		total += n
		if err != nil {
			return fmt.Errorf("%s: %w", src, err)
		}
		logger.Debug("Decoded source", slog.String("source", src), slog.Int("sentences", n))
	}

	logger.Info("Parse complete", slog.Int("sources", len(sources)), slog.Int("sentences", total))
	return nil
}

// stdinSource names standard input in sources and output.
const stdinSource = "-"

// expandInputs resolves arguments to file paths. No arguments means stdin.
func expandInputs(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return []string{stdinSource}, nil
	}

	var sources []string
	for _, p := range patterns {
		if p == stdinSource {
			sources = append(sources, p)
			continue
		}
		if _, err := os.Stat(p); err == nil {
			sources = append(sources, p)
			continue
		}
		if !doublestar.ValidatePathPattern(p) {
			return nil, fmt.Errorf("invalid pattern %q", p)
		}
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", p, err)
		}
		matches = filesOnly(matches)
		if len(matches) == 0 {
			return nil, fmt.Errorf("no input matches %q", p)
		}
		sort.Strings(matches)
		sources = append(sources, matches...)
	}
	return sources, nil
}

func filesOnly(paths []string) []string {
	files := paths[:0]
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			files = append(files, p)
		}
	}
	return files
}

func decodeSource(ctx context.Context, src string, stdin io.Reader, opts tagger.Options, w *sentenceWriter) (int, error) {
	r := stdin
	if src != stdinSource {
		f, err := os.Open(src)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}

	d := tagger.NewDecoder(r, opts)
	n := 0
	for {
		s, err := d.Next(ctx)
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := w.write(src, s); err != nil {
			return n, err
		}
		n++
	}
}

type sentenceWriter struct {
	out    io.Writer
	format string
	runID  string
	wrote  bool
}

func (w *sentenceWriter) write(src string, s *tagger.Sentence) error {
	if w.format == "json" {
		data, err := json.Marshal(parsedSentence{RunID: w.runID, Source: src, Sentence: *s})
		if err != nil {
			return fmt.Errorf("marshal sentence: %w", err)
		}
		_, err = fmt.Fprintf(w.out, "%s\n", data)
		return err
	}

	if w.wrote {
		if _, err := fmt.Fprintln(w.out); err != nil {
			return err
		}
	}
	w.wrote = true
	for _, word := range s.Words {
		if _, err := fmt.Fprintf(w.out, "%q - %s\n", word.Text, word.Tag); err != nil {
			return err
		}
	}
	return nil
}
