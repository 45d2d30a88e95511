package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/naveenspark/folio/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in admin and the token's claims",
	Long: `Show the signed-in admin and the claims decoded from the stored token.

The expiry is informational: the API decides whether the token is still
accepted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()
		return printWhoami(e.session, cmd.OutOrStdout(), time.Now())
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func printWhoami(sess *session.Session, w io.Writer, now time.Time) error {
	if !sess.IsAuthenticated() {
		return errors.New("not logged in, run `folio login`")
	}
	row := func(k, v string) {
		if v != "" {
			fmt.Fprintf(w, "%-10s %s\n", k, v) //nolint:errcheck
		}
	}
	if u := sess.User(); u != nil {
		row("email", u.Email)
		row("name", u.Name)
		row("role", u.Role)
		row("id", u.ID.String())
	}

	claims := sess.Claims()
	if claims == nil {
		row("token", "opaque (payload not decodable)")
		return nil
	}
	if exp, ok := sess.ExpiresAt(); ok {
		when := exp.Local().Format(time.RFC3339)
		if exp.After(now) {
			row("expires", fmt.Sprintf("%s (in %s)", when, exp.Sub(now).Round(time.Second)))
		} else {
			row("expires", fmt.Sprintf("%s (%s ago, not enforced)", when, now.Sub(exp).Round(time.Second)))
		}
	}

	keys := make([]string, 0, len(claims))
	for k := range claims {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintln(w, "\nclaims") //nolint:errcheck
	for _, k := range keys {
		fmt.Fprintf(w, "  %-8s %v\n", k, claims[k]) //nolint:errcheck
	}
	return nil
}
