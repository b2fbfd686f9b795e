package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Empty string", "", nil},
		{"Punctuation only", " ... !! ", nil},
		{"Lowercases", "Splunk SIEM", []string{"splunk", "siem"}},
		{"Symbols inside words", "Experience with C++, C#, and Node.js!", []string{"experience", "with", "c++", "c#", "and", "node.js"}},
		{"Ampersand", "MITRE ATT&CK", []string{"mitre", "att&ck"}},
		{"Certification plus", "CompTIA Security+ preferred", []string{"comptia", "security+", "preferred"}},
		{"Possessive dropped", "the team's analysts’s", []string{"the", "team", "analysts"}},
		{"Trailing punctuation trimmed", "end-to-end. done-", []string{"end-to-end", "done"}},
		{"Leading punctuation dropped", "-flag .hidden 'quoted'", []string{"flag", "hidden", "quoted"}},
		{"Aliases", "Golang K8s JS e-mail", []string{"go", "kubernetes", "javascript", "email"}},
		{"Decimal numbers", "3.5 years", []string{"3.5", "years"}},
		{"Unicode folding", "ÉCOLE Straße", []string{"école", "strasse"}},
		{"Compatibility forms", "Ｓｐｌｕｎｋ", []string{"splunk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestStem(t *testing.T) {
	pairs := [][2]string{
		{"training", "trained"},
		{"implementation", "implemented"},
		{"hunting", "hunt"},
		{"analysts", "analyst"},
		{"incidents", "incident"},
	}
	for _, p := range pairs {
		assert.Equal(t, Stem(p[0]), Stem(p[1]), "%s vs %s", p[0], p[1])
	}

	assert.Equal(t, "train", Stem("training"))
	assert.Equal(t, "implement", Stem("implementation"))

	// short and non-alphabetic tokens pass through
	assert.Equal(t, "soc", Stem("soc"))
	assert.Equal(t, "c++", Stem("c++"))
	assert.Equal(t, "att&ck", Stem("att&ck"))
	assert.Equal(t, "node.js", Stem("node.js"))
}

func TestNormalize(t *testing.T) {
	text := Normalize("Trained 8 analysts on threat hunting.")

	assert.Equal(t, 6, text.Len())
	assert.Equal(t, []string{"trained", "8", "analysts", "on", "threat", "hunting"}, text.Words())
	assert.Equal(t, "train 8 analyst on threat hunt", text.String())
	assert.False(t, text.IsEmpty())

	assert.True(t, Normalize("").IsEmpty())
	assert.True(t, Normalize("  ,, ").IsEmpty())
}

func TestContainsPhrase(t *testing.T) {
	doc := Normalize("We need Splunk SIEM expertise and advanced threat hunting capabilities")

	tests := []struct {
		phrase   string
		expected bool
	}{
		{"splunk", true},
		{"SPLUNK SIEM", true},
		{"threat hunting", true},
		{"threat hunt", true},
		{"hunting threat", false},
		{"siem splunk", false},
		{"splunk expertise", false},
		{"advance", true},
		{"spl", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			assert.Equal(t, tt.expected, doc.Contains(tt.phrase))
		})
	}

	assert.False(t, Normalize("").Contains("splunk"))
	assert.True(t, doc.ContainsAny([]string{"qradar", "zeek", "siem"}))
	assert.False(t, doc.ContainsAny([]string{"qradar", "zeek"}))
	assert.False(t, doc.ContainsAny(nil))
}

func TestFindAndCount(t *testing.T) {
	doc := Normalize("Splunk expert analyzing Splunk logs with Splunk SIEM")

	assert.Equal(t, []int{0, 3, 6}, doc.Find(Normalize("splunk")))
	assert.Equal(t, 3, doc.Count(Normalize("splunk")))
	assert.Equal(t, 1, doc.Count(Normalize("splunk siem")))
	assert.Equal(t, 0, doc.Count(Normalize("qradar")))
	assert.Nil(t, doc.Find(Normalize("")))

	repeated := Normalize("go go go")
	assert.Equal(t, []int{0, 1}, repeated.Find(Normalize("go go")))
	assert.Equal(t, 1, repeated.Count(Normalize("go go")))
}
