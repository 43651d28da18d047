package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentor/internal/profile"
)

var learnersCmd = &cobra.Command{
	Use:   "learners",
	Short: "List learners with stored profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		profiles, err := profile.NewStore(cfg.ProfileDir())
		if err != nil {
			return err
		}

		ids, err := profiles.List()
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Println("No learners yet. Run 'mentor' to start a session.")
			return nil
		}

		for _, id := range ids {
			p, err := profiles.Load(id)
			if err != nil {
				return err
			}
			fmt.Printf("%-20s %d sessions, %d topics\n", id, p.TotalSessions, len(p.Topics))
		}
		return nil
	},
}
