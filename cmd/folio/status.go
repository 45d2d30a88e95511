package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/naveenspark/folio/pkg/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the number of records in each collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()
		if !e.session.IsAuthenticated() {
			return fmt.Errorf("not logged in, run `folio login`")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.Timeout)
		defer cancel()
		totals, err := collectTotals(ctx, e.client)
		if err != nil {
			return fmt.Errorf("%s", client.Describe(err, err.Error()))
		}
		printTotals(cmd.OutOrStdout(), e.client.BaseURL(), totals)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

type collectionTotal struct {
	Name  string
	Total int
}

// collectTotals fetches the first page of every collection concurrently.
// The first failure cancels the rest.
func collectTotals(ctx context.Context, c *client.Client) ([]collectionTotal, error) {
	fetchers := []struct {
		name  string
		total func(ctx context.Context) (int, error)
	}{
		{"skills", func(ctx context.Context) (int, error) {
			p, err := c.ListSkills(ctx, 1, 1, "")
			if err != nil {
				return 0, err
			}
			return p.Total, nil
		}},
		{"journey", func(ctx context.Context) (int, error) {
			p, err := c.ListJourney(ctx, 1, 1)
			if err != nil {
				return 0, err
			}
			return p.Total, nil
		}},
		{"projects", func(ctx context.Context) (int, error) {
			p, err := c.ListProjects(ctx, 1, 1)
			if err != nil {
				return 0, err
			}
			return p.Total, nil
		}},
		{"contacts", func(ctx context.Context) (int, error) {
			p, err := c.ListContacts(ctx, 1, 1)
			if err != nil {
				return 0, err
			}
			return p.Total, nil
		}},
	}

	totals := make([]collectionTotal, len(fetchers))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range fetchers {
		i, f := i, f
		g.Go(func() error {
			n, err := f.total(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", f.name, err)
			}
			totals[i] = collectionTotal{Name: f.name, Total: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return totals, nil
}

func printTotals(w io.Writer, apiURL string, totals []collectionTotal) {
	fmt.Fprintf(w, "%-10s %s\n", "api", apiURL) //nolint:errcheck
	for _, t := range totals {
		fmt.Fprintf(w, "%-10s %d\n", t.Name, t.Total) //nolint:errcheck
	}
}
