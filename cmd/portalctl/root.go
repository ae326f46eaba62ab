package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "portalctl",
	Short: "Administer the portal RBAC core",
	Long: `portalctl manages roles, permissions and user assignments for the
administrative portal, and answers authorization queries.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
