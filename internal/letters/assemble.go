package letters

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/ats-tailor/internal/types"
)

// Defaults used when an input field is empty
const (
	defaultCompanyValue      = "excellence"
	defaultKeyResponsibility = "detect and respond to security threats"
	defaultPrimarySkill      = "security operations"
	defaultDomain            = "cybersecurity"
	defaultYears             = "several"
)

var blankLines = regexp.MustCompile(`\n{3,}`)

// Input is everything a cover letter is assembled from
type Input struct {
	Name            string
	Email           string
	Phone           string
	JobTitle        string
	YearsExperience float64
	PrimarySkill    string
	Domain          string
	// Background is an optional sentence appended to the opening
	Background string
	// KeyResponsibility completes "a <title> who can ..."
	KeyResponsibility string
	Company           types.CompanyInfo
	Proofs            []types.ProofMatch
	// Highlight is the recommended impact bullet, used when there are no proofs
	Highlight string
	// Date is printed at the top of the letter as given
	Date string
}

// Assembler fills cover letter templates. It is safe for concurrent use.
type Assembler struct {
	templates Templates
}

// NewAssembler creates an Assembler from validated templates
func NewAssembler(t Templates) (*Assembler, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Assembler{templates: t}, nil
}

// NewDefaultAssembler creates an Assembler from the embedded templates
func NewDefaultAssembler() (*Assembler, error) {
	t, err := DefaultTemplates()
	if err != nil {
		return nil, err
	}
	return NewAssembler(t)
}

// Styles lists the styles this assembler can produce
func (a *Assembler) Styles() []string {
	return a.templates.StyleNames()
}

// Assemble builds one cover letter in the given style
func (a *Assembler) Assemble(in Input, style string) (types.CoverLetter, error) {
	st, ok := a.templates.Styles[style]
	if !ok {
		return types.CoverLetter{}, &Error{Message: fmt.Sprintf("style %q", style), Cause: ErrUnknownStyle}
	}

	data := fields(in)

	opening := Format(st.Opening, data)
	if bg := strings.TrimSpace(in.Background); bg != "" {
		opening += " " + bg
	}
	body := a.body(in, data)
	closing := Format(st.Closing, data)

	data["Opening"] = opening
	data["Body"] = body
	data["Closing"] = closing
	full := Format(a.templates.Letter, data)
	full = blankLines.ReplaceAllString(strings.TrimSpace(full), "\n\n") + "\n"

	return types.CoverLetter{
		Style:    style,
		Opening:  opening,
		Body:     body,
		Closing:  closing,
		FullText: full,
	}, nil
}

// Variants builds one letter per style, in the order given. With no styles the default styles are used.
func (a *Assembler) Variants(in Input, styles ...string) ([]types.CoverLetter, error) {
	if len(styles) == 0 {
		styles = DefaultStyles
	}

	letters := make([]types.CoverLetter, 0, len(styles))
	for _, style := range styles {
		cl, err := a.Assemble(in, style)
		if err != nil {
			return nil, err
		}
		letters = append(letters, cl)
	}
	return letters, nil
}

// body writes one paragraph per proof, else the highlight, else the generic fallback
func (a *Assembler) body(in Input, data map[string]string) string {
	if len(in.Proofs) > 0 && a.templates.Proof != "" {
		paragraphs := make([]string, 0, len(in.Proofs))
		for _, p := range in.Proofs {
			pd := copyFields(data)
			pd["Requirement"] = strings.TrimSpace(p.Requirement)
			pd["Achievement"] = strings.TrimRight(strings.TrimSpace(p.Achievement), ".")
			paragraphs = append(paragraphs, Format(a.templates.Proof, pd))
		}
		return strings.Join(paragraphs, "\n\n")
	}

	if h := strings.TrimSpace(in.Highlight); h != "" && a.templates.Highlight != "" {
		pd := copyFields(data)
		pd["Highlight"] = h
		return Format(a.templates.Highlight, pd)
	}

	return Format(a.templates.Fallback, data)
}

// fields maps the input onto template placeholders, substituting defaults for empty values
func fields(in Input) map[string]string {
	company := in.Company.Name
	if strings.TrimSpace(company) == "" {
		company = types.DefaultCompanyName
	}

	value := defaultCompanyValue
	if len(in.Company.Values) > 0 {
		value = in.Company.Values[0]
	}

	benefit := "your mission"
	if ind := in.Company.Industry; ind != "" && ind != types.Unknown {
		benefit = "your " + ind + " mission"
	}

	years := defaultYears
	if in.YearsExperience > 0 {
		years = strconv.FormatFloat(in.YearsExperience, 'f', -1, 64) + "+"
	}

	var contact []string
	for _, c := range []string{in.Email, in.Phone} {
		if c = strings.TrimSpace(c); c != "" {
			contact = append(contact, c)
		}
	}

	return map[string]string{
		"Name":              in.Name,
		"JobTitle":          orDefault(in.JobTitle, "open"),
		"CompanyName":       company,
		"Years":             years,
		"PrimarySkill":      orDefault(in.PrimarySkill, defaultPrimarySkill),
		"Domain":            orDefault(in.Domain, defaultDomain),
		"KeyResponsibility": orDefault(in.KeyResponsibility, defaultKeyResponsibility),
		"CompanyValue":      value,
		"CompanyBenefit":    benefit,
		"Contact":           orDefault(strings.Join(contact, " | "), "the contact details above"),
		"ContactLine":       strings.Join(contact, " | "),
		"Date":              strings.TrimSpace(in.Date),
	}
}

func copyFields(data map[string]string) map[string]string {
	out := make(map[string]string, len(data)+2)
	for k, v := range data {
		out[k] = v
	}
	return out
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
