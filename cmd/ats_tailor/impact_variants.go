package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tailor/internal/types"
)

var impactVariantsCmd = &cobra.Command{
	Use:   "impact-variants",
	Short: "Rewrite achievements into angle-specific bullets",
	Long: `Rewrite an achievement from the security, efficiency, team and business angles and recommend
the angle that best matches a job. Use --achievement for a single statement, or --profile to
rewrite every achievement in the master profile.`,
	RunE: runImpactVariants,
}

var (
	impactJob         jobInput
	impactAchievement string
	impactMetrics     []string
	impactProfile     string
	impactOutput      string
)

func init() {
	impactJob.bind(impactVariantsCmd, true)
	impactVariantsCmd.Flags().StringVarP(&impactAchievement, "achievement", "a", "", "Achievement or responsibility statement")
	impactVariantsCmd.Flags().StringArrayVarP(&impactMetrics, "metric", "m", nil, "Achievement metric as key=value (repeatable)")
	impactVariantsCmd.Flags().StringVarP(&impactProfile, "profile", "p", "", "Path to master profile JSON; rewrites all of its achievements")
	impactVariantsCmd.Flags().StringVarP(&impactOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")

	rootCmd.AddCommand(impactVariantsCmd)
}

func runImpactVariants(cmd *cobra.Command, _ []string) error {
	if impactAchievement == "" && impactProfile == "" {
		return fmt.Errorf("must provide either --achievement or --profile")
	}
	if impactAchievement != "" && impactProfile != "" {
		return fmt.Errorf("cannot use --achievement with --profile")
	}

	engine, cfg, err := newEngine()
	if err != nil {
		return err
	}
	ks, err := impactJob.keywordSet(engine)
	if err != nil {
		return err
	}

	var achievements []types.Achievement
	if impactProfile != "" {
		p, err := loadProfile(impactProfile, cfg)
		if err != nil {
			return err
		}
		achievements = p.Achievements
	} else {
		metrics, err := parseMetrics(impactMetrics)
		if err != nil {
			return err
		}
		achievements = []types.Achievement{{Description: impactAchievement, Metrics: metrics}}
	}

	out := make([]types.TailoredAchievement, 0, len(achievements))
	for _, a := range achievements {
		result := engine.ImpactVariants(a.Description, a.Metrics, ks)
		if cfg.Verbose {
			printer(cmd).PrintImpactVariants(result.Variants, result.Recommended)
		}
		out = append(out, types.TailoredAchievement{
			ID:          a.ID,
			Description: a.Description,
			Variants:    result.Variants,
			Recommended: result.Recommended,
			Bullet:      result.RecommendedText(),
		})
	}
	logger.Info("generated impact variants", "achievements", len(out))

	if impactAchievement != "" {
		return writeOutput(cmd, impactOutput, out[0])
	}
	return writeOutput(cmd, impactOutput, out)
}

// parseMetrics reads key=value pairs. Numeric values are parsed as numbers so the metric kind
// can be inferred from the key.
func parseMetrics(pairs []string) (types.Metrics, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	metrics := make(types.Metrics, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid metric %q: expected key=value", pair)
		}
		value = strings.TrimSpace(value)
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			metrics[key] = types.ParseMetric(key, n)
		} else {
			metrics[key] = types.ParseMetric(key, value)
		}
	}
	return metrics, nil
}
