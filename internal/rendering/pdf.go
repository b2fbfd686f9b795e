package rendering

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrPandocNotFound is returned when the pandoc executable cannot be located
var ErrPandocNotFound = errors.New("pandoc not found")

// PDFPath returns the PDF path for a Markdown file
func PDFPath(mdPath string) string {
	return strings.TrimSuffix(mdPath, ".md") + ".pdf"
}

// ConvertToPDF converts a Markdown file to PDF next to it using pandoc with one-inch margins.
// Returns ErrPandocNotFound when pandoc is not installed so callers can skip conversion.
func ConvertToPDF(ctx context.Context, pandocPath, mdPath string) (string, error) {
	if pandocPath == "" {
		pandocPath = "pandoc"
	}
	bin, err := exec.LookPath(pandocPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrPandocNotFound, pandocPath)
	}

	pdfPath := PDFPath(mdPath)
	cmd := exec.CommandContext(ctx, bin, mdPath, "-o", pdfPath, "-V", "geometry:margin=1in")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &RenderError{
			Message: fmt.Sprintf("pandoc failed for %s: %s", mdPath, strings.TrimSpace(stderr.String())),
			Cause:   err,
		}
	}
	return pdfPath, nil
}
