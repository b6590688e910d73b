package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	fetchJSON  bool
	fetchIndex int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Print the frames in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		frames, err := loadFrames(cmd.Context())
		if err != nil {
			return err
		}

		if fetchIndex != -1 {
			if fetchIndex < 0 || fetchIndex >= len(frames) {
				return fmt.Errorf("frame index %d out of range (have %d frames)", fetchIndex, len(frames))
			}
			frames = frames[fetchIndex : fetchIndex+1]
		}

		w := cmd.OutOrStdout()
		if fetchJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(frames)
		}
		return writeFrames(w, frames)
	},
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchJSON, "json", false, "print the frames as a JSON array")
	fetchCmd.Flags().IntVarP(&fetchIndex, "index", "i", -1, "print only the frame at this index")
	rootCmd.AddCommand(fetchCmd)
}

// writeFrames prints each frame on its own lines with a blank line between frames.
func writeFrames(w io.Writer, frames []string) error {
	for i, f := range frames {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if !strings.HasSuffix(f, "\n") {
			f += "\n"
		}
		if _, err := io.WriteString(w, f); err != nil {
			return err
		}
	}
	return nil
}
