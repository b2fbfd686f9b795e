// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ats-tailor/internal/types"
	"github.com/jonathan/ats-tailor/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// writeList writes up to limit items with a "... and N more" trailer
func writeList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintKeywordSet outputs the extracted keywords by category.
func (p *Printer) PrintKeywordSet(ks types.KeywordSet) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total keywords: %d\n", ks.Len()))

	for _, cat := range types.Categories {
		keywords := ks.Keywords(cat)
		if len(keywords) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s (%d):\n", cat, len(keywords)))
		writeList(&sb, keywords, maxItemsToShow)
	}

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillRanking outputs the top skills with scores and matched keywords.
func (p *Printer) PrintSkillRanking(ranked []types.RankedSkill) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total skills ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		skill := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, skill.Name, skill.Category))
		sb.WriteString(fmt.Sprintf("    Score: %.2f", skill.Score))
		if skill.Position != i {
			sb.WriteString(fmt.Sprintf("  (was #%d)", skill.Position+1))
		}
		sb.WriteString("\n")
		if len(skill.Matched) > 0 {
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", truncate(strings.Join(skill.Matched, ", "), 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more skills", len(ranked)-maxItemsToShow))
	}

	p.printBox("SKILL RANKING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummarySelection outputs the chosen summary and its score.
func (p *Printer) PrintSummarySelection(sel types.SummarySelection) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Variant:  %s\n", sel.Key))
	sb.WriteString(fmt.Sprintf("Score:    %.2f\n\n", sel.Score))
	sb.WriteString(truncate(sel.Text, 3*(boxWidth-4)))

	p.printBox("SELECTED SUMMARY", sb.String())
}

// PrintImpactVariants outputs the four angle variants, marking the recommended one.
func (p *Printer) PrintImpactVariants(variants []types.ImpactVariant, recommended types.Angle) {
	if len(variants) == 0 {
		return
	}

	var sb strings.Builder
	for i, v := range variants {
		marker := " "
		if v.Angle == recommended {
			marker = "★"
		}
		sb.WriteString(fmt.Sprintf("%s %-10s %.2f\n", marker, v.Angle, v.Score))
		sb.WriteString(fmt.Sprintf("  %s\n", v.Text))
		if i < len(variants)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("IMPACT VARIANTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCompanyInfo outputs the company details inferred from the posting.
func (p *Printer) PrintCompanyInfo(info types.CompanyInfo) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", info.Name))
	sb.WriteString(fmt.Sprintf("Size:     %s\n", info.Size))
	sb.WriteString(fmt.Sprintf("Industry: %s\n", info.Industry))
	sb.WriteString(fmt.Sprintf("Location: %s\n", info.Location))

	if len(info.Values) > 0 {
		sb.WriteString("\nValues:\n")
		writeList(&sb, info.Values, 3)
	}

	p.printBox("COMPANY INFO", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProofMatches outputs requirement to achievement pairings.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProofMatches(matches []types.ProofMatch) {
	if len(matches) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO PROOF EXAMPLES MATCHED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, m := range matches {
		sb.WriteString(fmt.Sprintf("→ %s\n", m.Requirement))
		sb.WriteString(fmt.Sprintf("  %s\n", m.Achievement))
		sb.WriteString(fmt.Sprintf("  Confidence: %.2f\n", m.Confidence))
		if i < len(matches)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PROOF EXAMPLES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs keyword density, coverage and any violations found.
func (p *Printer) PrintValidation(report validation.Report) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Keyword density: %.1f%% (max %.1f%%)\n",
		report.Density.Density*100, report.Density.MaxDensity*100))
	sb.WriteString(fmt.Sprintf("Keyword coverage: %d/%d\n",
		len(report.Coverage.Matched), len(report.Coverage.Matched)+len(report.Coverage.Missing)))

	if len(report.Coverage.Missing) > 0 {
		sb.WriteString("\nMissing:\n")
		writeList(&sb, report.Coverage.Missing, maxItemsToShow)
	}

	if len(report.Violations) == 0 {
		sb.WriteString("\n✅ NO VIOLATIONS FOUND")
	} else {
		sb.WriteString(fmt.Sprintf("\nFound %d violations:\n", len(report.Violations)))
		for _, v := range report.Violations {
			sb.WriteString(fmt.Sprintf("⚠ %s\n", v.Type))
			sb.WriteString(fmt.Sprintf("  %s\n", v.Details))
		}
	}

	p.printBox("DOCUMENT CHECK", strings.TrimSuffix(sb.String(), "\n"))
}
