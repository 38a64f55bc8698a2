package main

import (
	"github.com/aretw0/jornada/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [paths...]",
	Short: "Check YAML modules for consistency",
	Long:  `Loads the modules, merges them and reports unknown targets, dead ends and unreachable nodes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := options(cmd)
		opts.Modules = append(opts.Modules, args...)
		return cli.Validate(opts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
