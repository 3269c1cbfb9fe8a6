package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/graeme-hill/complexcalc-go/history"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the history tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(cmd.Context(), a.cfg.History.DSN, a.log)
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Migrate(cmd.Context())
		},
	}
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently recorded expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("limit must be positive, got %d", limit)
			}
			store, err := history.Open(cmd.Context(), a.cfg.History.DSN, a.log)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				status := fmt.Sprintf("%d tokens", len(e.Tokens))
				if e.Error != "" {
					status = e.Error
				}
				fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", e.ID, e.At.Format(time.RFC3339), e.Expr, status)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of entries to show")
	return cmd
}
