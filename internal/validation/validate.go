package validation

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ats-tailor/internal/parsing"
	"github.com/jonathan/ats-tailor/internal/types"
)

// Violation types
const (
	ViolationKeywordStuffing = "keyword_stuffing"
	ViolationWeakPhrase      = "weak_phrase"
	ViolationLineTooLong     = "line_too_long"
)

// DefaultMaxLineChars is the longest rendered line an ATS parser handles reliably
const DefaultMaxLineChars = 200

// Violation is a single problem found in a document
type Violation struct {
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	Details    string `json:"details"`
	LineNumber *int   `json:"line_number,omitempty"`
	CharCount  *int   `json:"char_count,omitempty"`
}

// Options tunes document validation. Zero values use the defaults.
type Options struct {
	MaxDensity   float64
	MaxLineChars int
	WeakPhrases  []string
}

// Report is the outcome of validating one document
type Report struct {
	Density    Density               `json:"density"`
	Coverage   types.KeywordCoverage `json:"coverage"`
	Violations []Violation           `json:"violations"`
}

// Valid reports whether the document has no error-severity violations
func (r Report) Valid() bool {
	for _, v := range r.Violations {
		if v.Severity == "error" {
			return false
		}
	}
	return true
}

// Clean reports whether the document has no violations of any severity
func (r Report) Clean() bool {
	return len(r.Violations) == 0
}

var markdownMarkup = regexp.MustCompile(`(\*\*|__|\x60|^#+\s*|^\s*[-*]\s+)`)

// Validate checks a rendered document against a job's keyword set
func Validate(text string, ks types.KeywordSet, opts Options) Report {
	keywords := make([]string, 0, ks.Len())
	for _, e := range ks.Entries() {
		keywords = append(keywords, e.Keyword)
	}

	report := Report{
		Density:    ValidateKeywordDensity(text, keywords, opts.MaxDensity),
		Coverage:   KeywordCoverage(ks, text),
		Violations: []Violation{},
	}

	if !report.Density.Valid {
		report.Violations = append(report.Violations, Violation{
			Type:     ViolationKeywordStuffing,
			Severity: "error",
			Details: fmt.Sprintf("keyword density %.1f%% exceeds maximum %.1f%%",
				report.Density.Density*100, report.Density.MaxDensity*100),
		})
	}

	report.Violations = append(report.Violations, checkLines(text, opts)...)
	return report
}

// ValidateFile reads a rendered document and validates it
func ValidateFile(path string, ks types.KeywordSet, opts Options) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, &FileReadError{
			Message: fmt.Sprintf("failed to read document: %s", path),
			Cause:   err,
		}
	}
	return Validate(string(data), ks, opts), nil
}

func checkLines(text string, opts Options) []Violation {
	maxChars := opts.MaxLineChars
	if maxChars <= 0 {
		maxChars = DefaultMaxLineChars
	}

	var violations []Violation
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		content := markdownMarkup.ReplaceAllString(line, "")
		if n := utf8.RuneCountInString(content); n > maxChars {
			violations = append(violations, Violation{
				Type:       ViolationLineTooLong,
				Severity:   "warning",
				Details:    fmt.Sprintf("Line %d has %d characters, maximum is %d", lineNum, n, maxChars),
				LineNumber: intPtr(lineNum),
				CharCount:  intPtr(n),
			})
		}

		normalized := parsing.Normalize(content)
		for _, phrase := range opts.WeakPhrases {
			if normalized.Contains(phrase) {
				violations = append(violations, Violation{
					Type:       ViolationWeakPhrase,
					Severity:   "warning",
					Details:    fmt.Sprintf("Line %d contains weak phrase: %s", lineNum, phrase),
					LineNumber: intPtr(lineNum),
				})
				// one weak phrase per line
				break
			}
		}
	}
	return violations
}

func intPtr(i int) *int {
	return &i
}
