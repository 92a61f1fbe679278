package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/sqlfault/store"
)

// ListCmd implements the 'list' command.
type ListCmd struct {
	DB     string `help:"Path to the payload database" required:"" type:"path" env:"SQLFAULT_DB"`
	Name   string `short:"n" help:"Only list payloads with this name"`
	Limit  int    `short:"l" help:"Maximum number of payloads to list (0 for all)" default:"50"`
	Output string `short:"o" help:"Output format: table, json, yaml" default:"table" enum:"table,json,yaml"`
}

// Run executes the list command.
func (cmd *ListCmd) Run(g *Global) error {
	ctx := context.Background()

	s, err := store.Open(ctx, cmd.DB, store.WithMustExist(), store.WithLogger(g.Logger))
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.List(ctx, cmd.Name, cmd.Limit)
	if err != nil {
		return err
	}
	g.Logger.Debug("listed diagnostic payloads", slog.Int("count", len(entries)))

	switch cmd.Output {
	case "json":
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(g.Out)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		w := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSIZE\tENCODING\tCREATED")
		for _, e := range entries {
			enc := e.Encoding
			if enc == "" {
				enc = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", e.ID, e.Name, e.Size, enc, e.CreatedAt.Format(time.RFC3339))
		}
		return w.Flush()
	}
}
