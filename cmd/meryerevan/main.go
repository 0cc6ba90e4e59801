package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the meryerevan entry point
var rootCmd = &cobra.Command{
	Use:   "meryerevan",
	Short: "Civic project catalogue for Yerevan",
	Long: `meryerevan serves the Yerevan civic project site and offers tooling
for its content.

Available subcommands:
  serve     - Run the web server
  catalogue - Print the localized catalogue for one stage
  export    - Write localized JSON snapshots of the catalogue`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, catalogueCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
