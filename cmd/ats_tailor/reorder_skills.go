package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tailor/internal/types"
)

var reorderSkillsCmd = &cobra.Command{
	Use:   "reorder-skills",
	Short: "Reorder profile skills by relevance to a job",
	Long:  "Score every skill in the master profile against a job's keyword set and output them most relevant first. Equal scores keep declaration order.",
	RunE:  runReorderSkills,
}

var (
	reorderJob     jobInput
	reorderProfile string
	reorderMax     int
	reorderOutput  string
)

// ReorderOutput is written by the reorder-skills command
type ReorderOutput struct {
	Skills  []string            `json:"skills"`
	Ranking []types.RankedSkill `json:"ranking"`
}

func init() {
	reorderJob.bind(reorderSkillsCmd, true)
	reorderSkillsCmd.Flags().StringVarP(&reorderProfile, "profile", "p", "", "Path to master profile JSON (defaults to config profile)")
	reorderSkillsCmd.Flags().IntVar(&reorderMax, "max", 0, "Maximum skills to keep (defaults to config max_skills, 0 keeps all)")
	reorderSkillsCmd.Flags().StringVarP(&reorderOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")

	rootCmd.AddCommand(reorderSkillsCmd)
}

func runReorderSkills(cmd *cobra.Command, _ []string) error {
	engine, cfg, err := newEngine()
	if err != nil {
		return err
	}
	p, err := loadProfile(reorderProfile, cfg)
	if err != nil {
		return err
	}
	ks, err := reorderJob.keywordSet(engine)
	if err != nil {
		return err
	}

	maxSkills := cfg.MaxSkills
	if cmd.Flags().Changed("max") {
		maxSkills = reorderMax
	}

	ranked := engine.RankSkills(p.Skills, ks)
	if cfg.Verbose {
		printer(cmd).PrintSkillRanking(ranked)
	}

	out := ReorderOutput{
		Skills:  engine.ReorderSkills(p.Skills, ks, maxSkills),
		Ranking: ranked,
	}
	logger.Info("reordered skills", "skills", len(out.Skills))

	return writeOutput(cmd, reorderOutput, out)
}
