package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// roleUnassignCmd represents the role unassign command
var roleUnassignCmd = &cobra.Command{
	Use:   "unassign <role> <user>...",
	Short: "Revoke a role from users",
	Long: `Revoke a role from one or more users.

The bindings are soft-deleted, preserving the assignment history. Users
without the role are silently ignored.

Example:
  portalctl role unassign Admin alice --operator apollo`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		roleName := args[0]
		userIDs := args[1:]
		operator, _ := cmd.Flags().GetString("operator")

		service, err := newService()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create service: %v\n", err)
			os.Exit(1)
		}

		if err := service.RemoveRoleFromUsers(roleName, userIDs, operator); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to revoke role: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Revoked '%s' from the given users\n", roleName)
	},
}

func init() {
	roleCmd.AddCommand(roleUnassignCmd)
	roleUnassignCmd.Flags().String("operator", "", "User id recorded as operator")
	_ = roleUnassignCmd.MarkFlagRequired("operator")
}
