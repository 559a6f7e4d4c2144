package main

import (
	"fmt"

	"github.com/osa911/clipdesk/internal/db"
	"github.com/osa911/clipdesk/internal/repository"
	"github.com/osa911/clipdesk/internal/service"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userRoleCmd = &cobra.Command{
	Use:   "role <user-id> <client|clipper|manager|admin>",
	Short: "Change a user's role",
	Long: `Change a user's role. Users are created with the clipper role on first
login; this is how clients, managers and admins are promoted.

Example:
  clipdesk user role 3fJq9x manager`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Close()

		database, err := db.Open(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		users := service.NewUserService(repository.NewStore(database).Users)
		user, err := users.SetRole(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", user.ID, user.Role)
		return nil
	},
}

func init() {
	userCmd.AddCommand(userRoleCmd)
}
