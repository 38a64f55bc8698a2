package main

import (
	"fmt"
	"os"

	"github.com/aretw0/jornada/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jornada",
	Short: "Jornada is an adaptive onboarding engine",
	Long: `Jornada walks a user through a branching questionnaire and derives a
personal, financial and entrepreneurial profile from the answers.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringSlice("modules", nil, "YAML module files or directories (default: built-in catalog)")
	flags.Bool("lenient", false, "Log dead ends instead of failing")
	flags.Bool("debug", false, "Enable debug logging on stderr")
	flags.String("store", cli.StoreMemory, "Session store: memory, file or redis")
	flags.String("store-dir", ".jornada/sessions", "Directory of the file store")
	flags.String("redis-url", "", "Redis URL (default: $"+cli.EnvRedisURL+")")
	flags.StringP("session", "s", "", "Session id to create or resume")
	// The session encryption key is only read from $JORNADA_ENCRYPTION_KEY.
}

// options reads the persistent flags.
func options(cmd *cobra.Command) cli.Options {
	flags := cmd.Flags()
	modules, _ := flags.GetStringSlice("modules")
	lenient, _ := flags.GetBool("lenient")
	debug, _ := flags.GetBool("debug")
	store, _ := flags.GetString("store")
	storeDir, _ := flags.GetString("store-dir")
	redisURL, _ := flags.GetString("redis-url")
	sessionID, _ := flags.GetString("session")

	return cli.Options{
		Modules:   modules,
		Lenient:   lenient,
		Debug:     debug,
		Store:     store,
		StoreDir:  storeDir,
		RedisURL:  redisURL,
		SessionID: sessionID,
	}
}
