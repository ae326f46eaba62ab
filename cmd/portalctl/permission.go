package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// permissionCmd represents the permission command
var permissionCmd = &cobra.Command{
	Use:   "permission",
	Short: "Manage permissions",
	Long:  `Manage grantable permissions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'permission' requires a subcommand (create)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(permissionCmd)
}
