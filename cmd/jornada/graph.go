package main

import (
	"github.com/aretw0/jornada/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the question graph as Mermaid",
	Long: `Outputs a Mermaid diagram (graph TD) of every question and its routes.
With --session the visited and projected path of that session is highlighted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Graph(cmd.Context(), options(cmd), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
