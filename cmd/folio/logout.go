package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/naveenspark/folio/internal/session"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()
		return logout(e.session, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func logout(sess *session.Session, w io.Writer) error {
	if !sess.IsAuthenticated() {
		fmt.Fprintln(w, "Already logged out.") //nolint:errcheck
		return nil
	}
	if sess.Store().FromEnv() {
		fmt.Fprintf(w, "The token comes from %s; unset it to stay signed out.\n", session.EnvToken) //nolint:errcheck
	}
	if err := sess.Logout(); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	fmt.Fprintln(w, "Logged out.") //nolint:errcheck
	return nil
}
