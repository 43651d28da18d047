package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentor/internal/profile"
)

var resetCmd = &cobra.Command{
	Use:   "reset <learner>",
	Short: "Delete a learner's stored profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("this deletes %q's profile permanently; rerun with --yes to confirm", args[0])
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		profiles, err := profile.NewStore(cfg.ProfileDir())
		if err != nil {
			return err
		}
		if err := profiles.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted profile for %q. The event log is untouched.\n", args[0])
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the deletion")
}
