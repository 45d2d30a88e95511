// Command folio is a terminal admin console for a portfolio site.
//
// Run without arguments it opens the dashboard:
//
//	folio                      # dashboard, signed-in users land on /admin/home
//	folio --path /admin/skills # open a specific screen
//	folio login                # sign in
//	folio status               # collection totals
//	folio config show -o json  # effective settings and their sources
//
// Settings come from ~/.folio/config.yml (or FOLIO_CONFIG), FOLIO_*
// environment variables and a .env file in the working directory.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Terminal admin console for a portfolio site",
	Long: `Manage the home and about sections, skills, journey, projects and
contact messages of a portfolio site from the terminal.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")
		return runDashboard(cmd, path)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default ~/.folio/config.yml or $FOLIO_CONFIG)")
	rootCmd.Flags().String("path", "/", "screen to open, e.g. /admin/projects")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
