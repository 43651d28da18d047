package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentor/internal/profile"
	"github.com/abhisek/mentor/internal/topic"
)

var statsCmd = &cobra.Command{
	Use:   "stats [learner]",
	Short: "Show learning statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		learner := ""
		if len(args) == 1 {
			learner = args[0]
		} else if l, _ := cmd.Flags().GetString("learner"); l != "" {
			learner = l
		} else {
			learner = cfg.Learner
		}
		if learner == "" {
			return fmt.Errorf("no learner given: 'mentor stats <learner>'")
		}

		profiles, err := profile.NewStore(cfg.ProfileDir())
		if err != nil {
			return err
		}
		p, err := profiles.Load(learner)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d sessions\n", learner, p.TotalSessions)
		if len(p.Topics) == 0 {
			fmt.Println("No topics studied yet.")
			return nil
		}

		keys := make([]string, 0, len(p.Topics))
		for k := range p.Topics {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			rec := p.Topics[k]
			completed := 0
			for _, st := range rec.Subtopics {
				if st == topic.StatusCompleted {
					completed++
				}
			}
			fmt.Printf("\n%s (%s)\n", rec.Subject, orDash(string(rec.Level)))
			fmt.Printf("  subtopics: %d/%d completed\n", completed, len(rec.Subtopics))
			if rec.PracticeAttempted > 0 {
				fmt.Printf("  practice:  %d/%d correct\n", rec.PracticeCorrect, rec.PracticeAttempted)
			}
		}

		// Token spend lives in the event log; show it when available.
		st, err := openStore(cmd, cfg)
		if err != nil {
			return nil
		}
		defer st.Close()
		events, err := st.EventRepo()
		if err != nil {
			return nil
		}
		usage, err := events.TokenUsage(ctx, "")
		if err == nil && usage.Calls > 0 {
			fmt.Printf("\nLLM usage: %d calls, %d input / %d output tokens\n",
				usage.Calls, usage.InputTokens, usage.OutputTokens)
		}
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "unassessed"
	}
	return s
}
