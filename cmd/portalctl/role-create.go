package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MASEZHAO/apollo/pkg/model"
)

// roleCreateCmd represents the role create command
var roleCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a role",
	Long: `Create a role, optionally bound to an initial set of permissions.

The role name must be unique. Permission ids refer to permissions created
with "portalctl permission create".

Example:
  portalctl role create Admin --operator apollo
  portalctl role create Admin --permissions 1,2 --operator apollo`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		operator, _ := cmd.Flags().GetString("operator")
		permissionIDs, _ := cmd.Flags().GetInt64Slice("permissions")

		service, err := newService()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create service: %v\n", err)
			os.Exit(1)
		}

		role := &model.Role{
			Auditable: model.Auditable{CreatedBy: operator, LastModifiedBy: operator},
			Name:      name,
		}
		created, err := service.CreateRoleWithPermissions(role, permissionIDs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create role: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created role '%s' (id %d) with %d permission(s)\n", created.Name, created.ID, len(permissionIDs))
	},
}

func init() {
	roleCmd.AddCommand(roleCreateCmd)
	roleCreateCmd.Flags().Int64Slice("permissions", nil, "Permission ids to bind to the role")
	roleCreateCmd.Flags().String("operator", "", "User id recorded as creator")
	_ = roleCreateCmd.MarkFlagRequired("operator")
}
