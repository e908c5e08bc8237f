package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/img2ascii/internal/ascii"
	"github.com/ironsheep/img2ascii/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP tool server on stdin/stdout",
	Long: "Run the MCP tool server on stdin/stdout.\n\n" +
		"Configure it in your MCP client; logs go to stderr.",
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger()
	srv := server.New(ascii.NewConverter(log), log, Version)
	if err := srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
