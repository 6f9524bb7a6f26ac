package cmd

import (
	"fmt"

	"opensession-curator/internal/knowledge"
	"opensession-curator/internal/markdown"

	"github.com/spf13/cobra"
)

// knowledgeCmd inspects the knowledge base the composer feeds into
// prompts, to spot missing files before a scheduled run does.
var knowledgeCmd = &cobra.Command{
	Use:   "knowledge",
	Short: "Inspect the loaded knowledge base",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		kn := knowledge.Load(cfg.Paths.KnowledgeDir)

		fmt.Fprintf(cmd.OutOrStdout(), "brand identity:  %d bytes\n", len(kn.BrandIdentity))
		fmt.Fprintf(cmd.OutOrStdout(), "brand messaging: %d bytes\n", len(kn.BrandMessaging))
		fmt.Fprintf(cmd.OutOrStdout(), "art direction:   %d bytes\n", len(kn.ArtDirection))
		fmt.Fprintf(cmd.OutOrStdout(), "news sources:    %d bytes\n", len(kn.NewsSources))
		for cat, s := range kn.WritingStyles {
			fmt.Fprintf(cmd.OutOrStdout(), "style %-12s %d bytes\n", string(cat)+":", len(s))
		}
		return nil
	},
}

// knowledgeParseCmd parses one markdown file and prints its
// frontmatter keys, useful when a knowledge file fails to load.
var knowledgeParseCmd = &cobra.Command{
	Use:   "parse <markdown_path>",
	Short: "Parse a markdown file and print frontmatter keys",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := markdown.ParseFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "frontmatter keys: ")
		first := true
		for k := range doc.Frontmatter {
			if !first {
				fmt.Fprint(cmd.OutOrStdout(), ", ")
			}
			fmt.Fprint(cmd.OutOrStdout(), k)
			first = false
		}
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintf(cmd.OutOrStdout(), "body bytes: %d\n", len(doc.Body))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(knowledgeCmd)
	knowledgeCmd.AddCommand(knowledgeParseCmd)
}
