package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "Threat hunting with Splunk", "Threat hunting with Splunk"},
		{"emphasis", "*bold* and _italic_", `\*bold\* and \_italic\_`},
		{"code", "run `nmap`", "run \\`nmap\\`"},
		{"links", "[docs](url)", `\[docs\](url)`},
		{"html", "<script>", `\<script\>`},
		{"backslash", `C:\tools`, `C:\\tools`},
		{"table pipe", "a | b", `a \| b`},
		{"hash", "C# and #1", `C\# and \#1`},
		{"untouched symbols", "ATT&CK, Security+, 75% of $50,000", "ATT&CK, Security+, 75% of $50,000"},
		{"unicode", "naïve café", "naïve café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeMarkdown(tt.input))
		})
	}
}
