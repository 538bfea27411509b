package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/c360studio/postag/vocabulary/pos"
)

type tagRow struct {
	Name        string    `json:"name"`
	Tag         string    `json:"tag"`
	Class       pos.Class `json:"class"`
	Description string    `json:"description"`
	Parseable   bool      `json:"parseable"`
}

func tagsCmd(a *app) *cobra.Command {
	var (
		reverse bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the POS tag vocabulary",
		Long: `List every POS tag with its canonical string, class and description.

With --reverse only the strings accepted as tagger output are listed,
sorted by canonical string.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := tagRows(reverse)
			a.logger.Debug("Listing tags", "count", len(rows), "reverse", reverse)

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			case "text":
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tTAG\tCLASS\tDESCRIPTION")
				for _, r := range rows {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Tag, r.Class, r.Description)
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}

	cmd.Flags().BoolVar(&reverse, "reverse", false, "List only strings accepted by reverse lookup")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json)")
	return cmd
}

func tagRows(reverse bool) []tagRow {
	table := pos.Default()

	var tags []pos.Tag
	if reverse {
		for _, key := range table.Keys() {
			t, _ := table.Lookup(key)
			tags = append(tags, t)
		}
	} else {
		tags = pos.All()
	}

	rows := make([]tagRow, 0, len(tags))
	for _, t := range tags {
		_, ok := table.Lookup(t.String())
		rows = append(rows, tagRow{
			Name:        t.Name(),
			Tag:         t.String(),
			Class:       t.Class(),
			Description: t.Description(),
			Parseable:   ok,
		})
	}
	return rows
}
