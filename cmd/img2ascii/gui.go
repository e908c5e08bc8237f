package main

import (
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ironsheep/img2ascii/internal/ascii"
	"github.com/ironsheep/img2ascii/internal/shell"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the desktop window (default)",
	Args:  cobra.NoArgs,
	RunE:  runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

func runGUI(cmd *cobra.Command, args []string) error {
	log := newLogger()
	a := app.New()
	sh := shell.New(a, ascii.NewConverter(log), log)
	sh.Window().ShowAndRun()
	return nil
}
