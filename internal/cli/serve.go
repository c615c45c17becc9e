package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-api/internal"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and WebSocket servers",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		conf, err := initConfig()
		if err != nil {
			return err
		}

		if err = app.RunApp(initLogger(conf), conf); err != nil {
			return fmt.Errorf("app run failed: %w", err)
		}

		return nil
	},
}
