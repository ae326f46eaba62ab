package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// roleAssignCmd represents the role assign command
var roleAssignCmd = &cobra.Command{
	Use:   "assign <role> <user>...",
	Short: "Assign a role to users",
	Long: `Assign a role to one or more users.

Users already holding the role are skipped.

Example:
  portalctl role assign Admin alice bob --operator apollo`,
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

		assigned, err := service.AssignRoleToUsers(roleName, userIDs, operator)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to assign role: %v\n", err)
			os.Exit(1)
		}

		if len(assigned) == 0 {
			fmt.Println("No new assignments (all users already hold the role)")
			return
		}
		fmt.Printf("Assigned '%s' to: %s\n", roleName, strings.Join(assigned, ", "))
	},
}

func init() {
	roleCmd.AddCommand(roleAssignCmd)
	roleAssignCmd.Flags().String("operator", "", "User id recorded as operator")
	_ = roleAssignCmd.MarkFlagRequired("operator")
}
