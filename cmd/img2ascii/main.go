package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "img2ascii",
	Short: "Render images as ASCII art",
	Long: "img2ascii converts a raster image into text using the ramp \"@%#*+=-:. \".\n\n" +
		"Without a subcommand it opens the desktop window.\n\n" +
		"Environment variables:\n" +
		"  IMG2ASCII_LOG_LEVEL=debug    Set log verbosity (debug, info, warn, error)",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGUI,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("img2ascii %s\n  Build time: %s\n  Git commit: %s\n",
		Version, BuildTime, GitCommit))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
