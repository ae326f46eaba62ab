package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MASEZHAO/apollo/pkg/model"
)

// permissionCreateCmd represents the permission create command
var permissionCreateCmd = &cobra.Command{
	Use:   "create <type> <target>",
	Short: "Create a permission",
	Long: `Create a permission for a (type, target) pair.

The pair must be unique among existing permissions.

Example:
  portalctl permission create ModifyConfig appX --operator apollo`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		permissionType := args[0]
		targetID := args[1]
		operator, _ := cmd.Flags().GetString("operator")

		service, err := newService()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create service: %v\n", err)
			os.Exit(1)
		}

		permission := &model.Permission{
			Auditable:      model.Auditable{CreatedBy: operator, LastModifiedBy: operator},
			PermissionType: permissionType,
			TargetID:       targetID,
		}
		created, err := service.CreatePermission(permission)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create permission: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created permission %s on %s (id %d)\n", created.PermissionType, created.TargetID, created.ID)
	},
}

func init() {
	permissionCmd.AddCommand(permissionCreateCmd)
	permissionCreateCmd.Flags().String("operator", "", "User id recorded as creator")
	_ = permissionCreateCmd.MarkFlagRequired("operator")
}
