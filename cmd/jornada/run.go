package main

import (
	"github.com/aretw0/jornada/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Answer the onboarding interactively",
	Long: `Presents each question on the terminal and prints the derived profile at
the end. Type :back to return to the previous question and :quit to leave.
With --session and a persistent --store the session can be resumed later.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Execute(options(cmd))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
