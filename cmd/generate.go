package cmd

import (
	"fmt"
	"log/slog"

	"opensession-curator/internal/ai"
	"opensession-curator/internal/artifact"
	"opensession-curator/internal/config"
	"opensession-curator/internal/feeds"
	"opensession-curator/internal/generate"
	"opensession-curator/internal/knowledge"
	"opensession-curator/internal/model"
	"opensession-curator/internal/pipeline"

	"github.com/spf13/cobra"
)

// generateCmd groups the two generation runs. Each run is a
// no-argument batch job: exit 0 only when every category in the run
// produced and persisted a collection.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run a content generation batch",
}

var generateNewsCmd = &cobra.Command{
	Use:   "news",
	Short: "Generate the weekly-update and monthly-outlook news collections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		run, err := newRun(cfg, model.NewsCategories, cfg.Generate.NewsPerFeed)
		if err != nil {
			return err
		}
		return run.Execute(cmd.Context())
	},
}

var generateIdeasCmd = &cobra.Command{
	Use:   "ideas",
	Short: "Generate the short-form, long-form, and blog idea collections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		run, err := newRun(cfg, model.IdeaCategories, cfg.Generate.IdeasPerFeed)
		if err != nil {
			return err
		}
		// Hotness scoring config is loaded for visibility but does not
		// gate content inclusion.
		if h := knowledge.LoadHotness(cfg.Paths.ConfigDir); h != nil {
			slog.Info("generate: hotness scoring config loaded (inert)")
		}
		return run.Execute(cmd.Context())
	},
}

// newRun wires a generation run from configuration. The completion
// credential is a hard precondition: without it the process must exit
// non-zero before any network work.
func newRun(cfg config.Config, categories []model.Category, perFeed int) (*pipeline.Run, error) {
	key := cfg.APIKey()
	if key == "" {
		return nil, fmt.Errorf("completion API key is required: set openai.api_key or OPENSESSION_API_KEY")
	}
	completer := ai.NewOpenAI(ai.Config{APIKey: key, Model: cfg.OpenAI.Model, BaseURL: cfg.OpenAI.BaseURL})
	return &pipeline.Run{
		Feeds:      cfg.Feeds,
		PerFeed:    perFeed,
		Categories: categories,
		Knowledge:  knowledge.Load(cfg.Paths.KnowledgeDir),
		Collector:  feeds.New(),
		Generator:  generate.New(completer),
		Store:      artifact.NewStore(cfg.Paths.DataDir),
	}, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.AddCommand(generateNewsCmd)
	generateCmd.AddCommand(generateIdeasCmd)
}
