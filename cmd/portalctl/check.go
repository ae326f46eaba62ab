package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <user> <type> <target>",
	Short: "Check whether a user holds a permission",
	Long: `Check whether a user may perform a permission on a target.

Exits 0 when the permission is granted, 2 when it is denied.

Example:
  portalctl check alice ModifyConfig appX`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		userID, permissionType, targetID := args[0], args[1], args[2]

		service, err := newService()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create service: %v\n", err)
			os.Exit(1)
		}

		granted, err := service.UserHasPermission(userID, permissionType, targetID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to check permission: %v\n", err)
			os.Exit(1)
		}

		if !granted {
			fmt.Printf("DENIED: %s may not %s on %s\n", userID, permissionType, targetID)
			os.Exit(2)
		}
		fmt.Printf("GRANTED: %s may %s on %s\n", userID, permissionType, targetID)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
