package main

import (
	"fmt"

	"github.com/aretw0/jornada"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of jornada",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "jornada version %s\n", jornada.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
