// spacexdash serves an interactive dashboard over SpaceX launch records.
//
// Usage:
//
//	spacexdash [--config=<path>] [--data=<csv|xlsx>] [--host=<addr>] [--port=<n>] [--debug]
//	spacexdash summary [--site=<site>] [--low=<kg>] [--high=<kg>]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "spacexdash",
	Short: "SpaceX launch records dashboard",
	Long:  "spacexdash loads a SpaceX launch dataset and serves a dashboard with a\nlaunch-site dropdown, a payload range slider, a success pie chart and a\npayload vs. outcome scatter chart.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
