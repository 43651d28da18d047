package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mentor/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "mentor",
	Short: "Personal AI tutor in the terminal",
	Long: "Mentor is a terminal tutor that sizes you up with a quick diagnostic,\n" +
		"then teaches any topic Socratically: guided questions, practice problems,\n" +
		"and a profile that remembers where you left off.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/mentor/config.yaml)")
	rootCmd.PersistentFlags().String("learner", "", "Learner name (overrides the config file)")
	rootCmd.PersistentFlags().String("data", "", "Directory for profiles and the event log (overrides the config file)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event log (overrides MENTOR_DB)")

	rootCmd.AddCommand(learnersCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config or the default
// path, then applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("data"); dir != "" {
		cfg.DataDir = dir
	}
	return cfg, nil
}
