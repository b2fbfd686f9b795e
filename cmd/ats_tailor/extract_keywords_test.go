package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-tailor/internal/ingestion"
	"github.com/jonathan/ats-tailor/internal/types"
)

func TestExtractKeywordsCommand_Text(t *testing.T) {
	res, err := runCLI(t, "extract-keywords", "--text", splunkJob)
	require.NoError(t, err)

	var ks types.KeywordSet
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &ks))
	assert.Contains(t, ks.Tools, "splunk")
}

func TestExtractKeywordsCommand_JobFileToOutput(t *testing.T) {
	dir := t.TempDir()
	job := writeTestFile(t, dir, "job.html", "<html><body><main><p>"+splunkJob+"</p></main></body></html>")
	out := filepath.Join(dir, "out", "keywords.json")

	res, err := runCLI(t, "extract-keywords", "--job", job, "--out", out)
	require.NoError(t, err)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "Output: "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var ks types.KeywordSet
	require.NoError(t, json.Unmarshal(data, &ks))
	assert.Contains(t, ks.Tools, "splunk")
}

func TestExtractKeywordsCommand_InputErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no input", []string{"extract-keywords"}, "must provide either --job or --text"},
		{"both inputs", []string{"extract-keywords", "--job", "job.txt", "--text", "x"}, "cannot use --job with --text"},
		{"missing file", []string{"extract-keywords", "--job", filepath.Join(t.TempDir(), "nope.txt")}, "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExtractKeywordsCommand_VerbosePrintsBox(t *testing.T) {
	res, err := runCLI(t, "extract-keywords", "-v", "--text", splunkJob)
	require.NoError(t, err)
	assert.Contains(t, res.stderr, "EXTRACTED KEYWORDS")
}

func TestExtractKeywordsCommand_SaveText(t *testing.T) {
	dir := t.TempDir()
	saveDir := filepath.Join(dir, "job")

	_, err := runCLI(t, "extract-keywords", "--text", "<p>"+splunkJob+"</p>", "--save-text", saveDir)
	require.NoError(t, err)

	cleaned, err := os.ReadFile(filepath.Join(saveDir, "job_description.cleaned.txt"))
	require.NoError(t, err)
	assert.Equal(t, splunkJob, string(cleaned))

	var meta ingestion.Metadata
	data, err := os.ReadFile(filepath.Join(saveDir, "job_description.meta.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.Equal(t, ingestion.FormatText, meta.Format)
	assert.Len(t, meta.Hash, 64)
	assert.Equal(t, len(splunkJob), meta.Chars)
}
