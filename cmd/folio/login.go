package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/naveenspark/folio/internal/session"
	"github.com/naveenspark/folio/internal/tui"
	"github.com/naveenspark/folio/pkg/client"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in as the site admin",
	Long: `Sign in and store the bearer token in the token file.

Without --password-stdin the dashboard opens on its login screen.

Example:
  folio login
  printf '%s' "$PASSWORD" | folio login --email admin@example.com --password-stdin`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fromStdin, _ := cmd.Flags().GetBool("password-stdin")
		if !fromStdin {
			return runDashboard(cmd, "/login")
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			email = e.cfg.AdminEmail
		}
		if email == "" {
			return errors.New("--email is required with --password-stdin (or set admin_email)")
		}
		password, err := readPassword(cmd.InOrStdin())
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.Timeout)
		defer cancel()
		return loginWithPassword(ctx, e.client, e.session, email, password, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().String("email", "", "admin email (default admin_email from config)")
	loginCmd.Flags().Bool("password-stdin", false, "read the password from stdin")
}

// readPassword returns the first line of r.
func readPassword(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return "", errors.New("no password on stdin")
	}
	pw := strings.TrimRight(sc.Text(), "\r")
	if pw == "" {
		return "", errors.New("empty password on stdin")
	}
	return pw, nil
}

func loginWithPassword(ctx context.Context, c *client.Client, sess *session.Session, email, password string, w io.Writer) error {
	res, err := c.Login(ctx, email, password)
	if err != nil {
		return errors.New(client.Describe(err, tui.LoginFailedMessage))
	}
	user := res.User
	if err := sess.Login(res.Token, &user); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	who := user.Email
	if who == "" {
		who = email
	}
	fmt.Fprintf(w, "Signed in as %s\n", who) //nolint:errcheck
	return nil
}
