package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// roleUsersCmd represents the role users command
var roleUsersCmd = &cobra.Command{
	Use:   "users <role>",
	Short: "List users holding a role",
	Long: `List the users actively holding a role.

A nonexistent role yields an empty list.

Example:
  portalctl role users Admin`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		roleName := args[0]

		service, err := newService()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create service: %v\n", err)
			os.Exit(1)
		}

		users, err := service.QueryUsersWithRole(roleName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to query users: %v\n", err)
			os.Exit(1)
		}

		if len(users) == 0 {
			fmt.Printf("No users hold role '%s'\n", roleName)
			return
		}
		for _, user := range users {
			fmt.Println(user.UserID)
		}
	},
}

func init() {
	roleCmd.AddCommand(roleUsersCmd)
}
