package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/c360studio/postag/vocabulary/pos"
)

func lookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup STRING...",
		Short: "Resolve tagger output strings to POS tags",
		Long: `Resolve each argument to a POS tag by exact, case-sensitive match.

Exits non-zero if any argument is not a tag string.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, s := range args {
				tag, err := pos.Parse(s)
				if err != nil {
					a.logger.Warn("Lookup failed", "input", s, "error", err)
					fmt.Fprintf(out, "%s\t-\n", strconv.Quote(s))
					failed++
					continue
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", strconv.Quote(s), tag.Name(), tag.Description())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d strings unrecognized: %w", failed, len(args), pos.ErrUnrecognizedTag)
			}
			return nil
		},
	}
}
