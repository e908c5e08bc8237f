package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/img2ascii/internal/ascii"
)

var convertCmd = &cobra.Command{
	Use:   "convert <image>",
	Short: "Print an image as ASCII art",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().IntP("width", "w", ascii.DefaultColumns, "Characters per line")
	convertCmd.Flags().Int("max-height", ascii.MaxRows, "Maximum number of lines")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	maxHeight, _ := cmd.Flags().GetInt("max-height")

	conv := ascii.NewConverter(newLogger())
	res, err := conv.Convert(args[0], width, maxHeight)
	if err != nil {
		return fmt.Errorf("converting %s: %w", args[0], err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Text)
	return nil
}
