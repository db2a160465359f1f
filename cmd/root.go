package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/aimarketcap/internal/config"
	"github.com/abhisek/aimarketcap/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "aimarketcap",
	Short: "Discover AI tools that fit how you work",
	Long:  "AIMarketCap — terminal app that profiles what you need and recommends AI tools from its catalog.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AIMARKETCAP_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/aimarketcap/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug-level logs")
	rootCmd.Flags().Bool("no-splash", false, "Skip the animated splash screen")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfigPath returns --config if set, otherwise the default XDG path.
func resolveConfigPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return config.DefaultPath()
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(resolveConfigPath(cmd))
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Lookup("no-splash") != nil {
		if off, _ := cmd.Flags().GetBool("no-splash"); off {
			splash := false
			cfg.Splash = &splash
		}
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file / AIMARKETCAP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
