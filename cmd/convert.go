package cmd

import (
	"fmt"
	"os"

	"github.com/JPM1118/frogframes/internal/ascii"
	"github.com/spf13/cobra"
)

var (
	convertOutput string
	convertSize   int
	convertThin   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <image>",
	Short: "Convert an image (PNG, JPEG, GIF, BMP, TIFF) into an ASCII sprite frame",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		art, err := ascii.ConvertFile(args[0], ascii.Options{Size: convertSize, Thin: convertThin})
		if err != nil {
			return err
		}

		if convertOutput == "" {
			fmt.Fprintln(cmd.OutOrStdout(), art)
			return nil
		}
		if err := os.WriteFile(convertOutput, []byte(art), 0644); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
		logger.Debug("frame written", "path", convertOutput, "size", convertSize)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "write the frame here instead of stdout")
	convertCmd.Flags().IntVar(&convertSize, "size", ascii.DefaultSize, "resize the image to this square size")
	convertCmd.Flags().BoolVar(&convertThin, "thin", false, "thin edges with a 3x3 minimum filter")
	rootCmd.AddCommand(convertCmd)
}
