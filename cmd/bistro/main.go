package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bistro",
	Short: "Bistro Boss restaurant API",
	Long:  "Run the bistro HTTP server and its maintenance commands.",
}

func main() {
	rootCmd.AddCommand(serveCmd, seedCmd, routeListCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
