package figfonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	documentHeader = `\documentclass[a4paper]{jarticle}
\usepackage{graphicx}

\begin{document}
`

	documentFigure = `
\begin{figure}
    \includegraphics{%s}
\end{figure}
`

	documentFooter = `
\end{document}
`
)

// WriteDocument generates a minimal LaTeX document containing one figure
// block per image and writes it into a fresh temporary directory. Image
// paths are made absolute with forward-slash separators because platex does
// not reliably resolve relative paths or backslash separators. The directory
// is left behind for the compile step and is never deleted here.
func (c *Checker) WriteDocument(imageFiles []string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "figfonts")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	c.logger.Debug(tmpDir)

	f, err := os.CreateTemp(tmpDir, "figures-*.tex")
	if err != nil {
		return "", fmt.Errorf("failed to create document file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(documentHeader); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}
	for _, imageFile := range imageFiles {
		c.logger.Debug(imageFile)
		abs, err := filepath.Abs(imageFile)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", imageFile, err)
		}
		abs = strings.ReplaceAll(abs, "\\", "/")
		if _, err := fmt.Fprintf(f, documentFigure, abs); err != nil {
			return "", fmt.Errorf("failed to write document: %w", err)
		}
	}
	if _, err := f.WriteString(documentFooter); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}

	return f.Name(), nil
}
