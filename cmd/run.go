package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentor/internal/app"
	"github.com/abhisek/mentor/internal/config"
	"github.com/abhisek/mentor/internal/content"
	"github.com/abhisek/mentor/internal/llm"
	"github.com/abhisek/mentor/internal/profile"
	"github.com/abhisek/mentor/internal/store"
	"github.com/abhisek/mentor/internal/tutor"
)

// runSession opens the store, builds the provider stack, and launches
// the TUI for one tutoring session.
func runSession(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	learner, err := resolveLearner(cmd, cfg)
	if err != nil {
		return err
	}

	st, err := openStore(cmd, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	events, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("event repo: %w", err)
	}

	provider, err := llm.NewProvider(ctx, cfg.LLMConfig(), events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "No LLM provider is configured; mentor cannot teach without one.")
		fmt.Fprintln(os.Stderr, "Set ANTHROPIC_API_KEY, OPENAI_API_KEY, or GEMINI_API_KEY, or see 'mentor --help'.")
		return err
	}

	profiles, err := profile.NewStore(cfg.ProfileDir())
	if err != nil {
		return fmt.Errorf("open profiles: %w", err)
	}

	cache := content.NewCache(content.NewGenerator(provider, content.DefaultConfig()))
	session, err := tutor.NewSession(learner, cache, profile.NewManager(profiles), events)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	session.SetLearnerName(cfg.Name)

	return app.Run(session)
}

// resolveLearner picks the learner id: --learner, then the config file,
// then the OS username.
func resolveLearner(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if l, _ := cmd.Flags().GetString("learner"); l != "" {
		return l, nil
	}
	if cfg.Learner != "" {
		return cfg.Learner, nil
	}
	if u := os.Getenv("USER"); u != "" {
		return strings.ToLower(u), nil
	}
	return "", fmt.Errorf("no learner configured: pass --learner or set 'learner' in the config file")
}

// openStore resolves the event log path from --db, the config file, or
// the default location.
func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := store.EnsureDir(p); err != nil {
			return nil, err
		}
		return store.Open(p)
	}
	if p := cfg.DBPath(); p != "" {
		if err := store.EnsureDir(p); err != nil {
			return nil, err
		}
		return store.Open(p)
	}
	p, err := store.DefaultDBPath()
	if err != nil {
		return nil, err
	}
	return store.Open(p)
}
