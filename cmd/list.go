package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/JPM1118/frogframes/internal/sprites"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print frame sizes (non-interactive)",
	RunE: func(cmd *cobra.Command, args []string) error {
		frames, err := loadFrames(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(frames) == 0 {
			fmt.Fprintln(out, "No frames configured.")
			return nil
		}

		names := loader.Names()
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tLINES\tWIDTH\tBYTES")
		fmt.Fprintln(w, "────\t─────\t─────\t─────")
		for i, f := range frames {
			d := sprites.Measure(f)
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", names[i], d.Lines, d.Width, len(f))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
