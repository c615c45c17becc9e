package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-api/internal"
	"github.com/rocketscienceinc/tictactoe-api/internal/scoreboard"
)

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Print wins, losses and draws of every user",
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

		entries, err := application.Games.Scoreboard(cmd.Context())
		if err != nil {
			return err
		}

		return writeScoreboard(cmd.OutOrStdout(), entries)
	},
}

func writeScoreboard(out io.Writer, entries []scoreboard.Entry) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "USERNAME\tWINS\tLOSSES\tDRAWS")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", entry.Username, entry.Wins, entry.Losses, entry.Draws)
	}

	return w.Flush()
}
