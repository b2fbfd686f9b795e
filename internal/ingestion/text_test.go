package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	result := CleanText("# Title\n   ## Subtitle\nContent here")

	assert.Contains(t, result, "# Title")
	assert.Contains(t, result, "\n## Subtitle")
	assert.Contains(t, result, "Content here")
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	result := CleanText("- Item 1\n- Item 2\n* Item 3\n• Item 4")

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "- Item 2")
	assert.Contains(t, result, "* Item 3")
	assert.Contains(t, result, "- Item 4")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	result := CleanText("Line    with \t multiple    spaces")
	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	result := CleanText("Line 1\n\n\n\n\nLine 2")
	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	result := CleanText("Line 1\r\nLine 2\rLine 3\nLine 4")
	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	result := CleanText("Test with émojis 🚀 and spéciàl chàracters")

	assert.Contains(t, result, "émojis")
	assert.Contains(t, result, "🚀")
	assert.Contains(t, result, "spéciàl chàracters")
}

func TestCleanText_PreserveIndentation(t *testing.T) {
	result := CleanText("Top\n    Indented   line\n  - nested bullet")
	assert.Equal(t, "Top\n    Indented line\n  - nested bullet", result)
}

func TestLoadJobDescription_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("# SOC Analyst\n\n\n\nSplunk   SIEM experience"), 0644))

	text, metadata, err := LoadJobDescription(path)
	require.NoError(t, err)

	assert.Equal(t, "# SOC Analyst\n\nSplunk SIEM experience", text)
	require.NotNil(t, metadata)
	assert.Equal(t, FormatText, metadata.Format)
	assert.Equal(t, path, metadata.Source)
	assert.Len(t, metadata.Hash, 64)
	assert.NotEmpty(t, metadata.Timestamp)
}

func TestLoadJobDescription_HTML(t *testing.T) {
	page := `<html><head><title>Jobs</title><script>var x = 1;</script></head>
<body>
<nav>Home | Careers</nav>
<div class="job-description">
  <h2>Security Engineer</h2>
  <p>Acme Corp is hiring a Security Engineer.</p>
  <ul><li>Splunk &amp; QRadar</li><li>Threat hunting</li></ul>
</div>
<footer>Copyright</footer>
</body></html>`
	path := filepath.Join(t.TempDir(), "job.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0644))

	text, metadata, err := LoadJobDescription(path)
	require.NoError(t, err)

	assert.Equal(t, FormatHTML, metadata.Format)
	assert.Contains(t, text, "Security Engineer")
	assert.Contains(t, text, "Acme Corp is hiring a Security Engineer.")
	assert.Contains(t, text, "- Splunk & QRadar")
	assert.Contains(t, text, "- Threat hunting")
	assert.NotContains(t, text, "Careers")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "var x")
}

func TestLoadJobDescription_FileNotFound(t *testing.T) {
	text, metadata, err := LoadJobDescription("/nonexistent/file.txt")

	require.Error(t, err)
	assert.Empty(t, text)
	assert.Nil(t, metadata)
	assert.Contains(t, err.Error(), "file not found")
}

func TestLoadJobDescription_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.rtf")
	require.NoError(t, os.WriteFile(path, []byte("{\\rtf1}"), 0644))

	_, _, err := LoadJobDescription(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoadJobDescription_InvalidPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0644))

	_, _, err := LoadJobDescription(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to extract text")
}

func TestLoadJobDescription_HashStable(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.md")
	c := filepath.Join(dir, "c.txt")
	require.NoError(t, os.WriteFile(a, []byte("Content 1"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("Content 1\n"), 0644))
	require.NoError(t, os.WriteFile(c, []byte("Content 2"), 0644))

	_, ma, err := LoadJobDescription(a)
	require.NoError(t, err)
	_, mb, err := LoadJobDescription(b)
	require.NoError(t, err)
	_, mc, err := LoadJobDescription(c)
	require.NoError(t, err)

	assert.Equal(t, ma.Hash, mb.Hash)
	assert.NotEqual(t, ma.Hash, mc.Hash)
	assert.Equal(t, FormatMarkdown, mb.Format)
}

func TestWriteOutput(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "out")
	metadata := NewMetadata("cleaned", "job.txt")

	require.NoError(t, WriteOutput(outDir, "cleaned", metadata))

	data, err := os.ReadFile(filepath.Join(outDir, "job_description.cleaned.txt"))
	require.NoError(t, err)
	assert.Equal(t, "cleaned", string(data))
	assert.FileExists(t, filepath.Join(outDir, "job_description.meta.json"))
}
