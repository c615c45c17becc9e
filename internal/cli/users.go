package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-api/internal"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage registered users",
}

var usersAddCmd = &cobra.Command{
	Use:   "add [username]",
	Short: "Register a new user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := initConfig()
		if err != nil {
			return err
		}

		application, err := app.Open(cmd.Context(), initLogger(conf), conf)
		if err != nil {
			return err
		}
		defer application.Close()

		user, err := application.Users.Register(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added user %d: %s\n", user.ID, user.Username)
		return nil
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf, err := initConfig()
		if err != nil {
			return err
		}

		application, err := app.Open(cmd.Context(), initLogger(conf), conf)
		if err != nil {
			return err
		}
		defer application.Close()

		users, err := application.Users.List(cmd.Context())
		if err != nil {
			return err
		}

		for _, user := range users {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", user.ID, user.Username)
		}
		return nil
	},
}

func init() {
	usersCmd.AddCommand(usersAddCmd)
	usersCmd.AddCommand(usersListCmd)
}
