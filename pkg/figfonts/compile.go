package figfonts

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrPDFNotCreated is returned when the toolchain finished without leaving a
// PDF next to the document. Compiler and converter failures are not told
// apart; the artifact's existence is the only success criterion.
var ErrPDFNotCreated = errors.New("failed to create pdf files")

// swapExt replaces the extension of path with ext.
func swapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}

// CompilePDF compiles the generated document and, if the compiler exits
// cleanly, converts the resulting DVI to PDF. Both tools run with their
// working directory set to the document's directory and their output
// discarded; the converter's exit status is ignored. The returned path is
// the PDF sibling of docFile.
func (c *Checker) CompilePDF(docFile string) (string, error) {
	dir := filepath.Dir(docFile)

	latex := exec.Command(c.cfg.LatexCmd, docFile)
	latex.Dir = dir
	if err := latex.Run(); err == nil {
		dvipdf := exec.Command(c.cfg.DvipdfCmd, swapExt(docFile, "dvi"))
		dvipdf.Dir = dir
		if err := dvipdf.Run(); err != nil {
			c.logger.Debugf("%s: %v", c.cfg.DvipdfCmd, err)
		}
	} else {
		c.logger.Debugf("%s: %v", c.cfg.LatexCmd, err)
	}

	pdfFile := swapExt(docFile, "pdf")
	if _, err := os.Stat(pdfFile); err != nil {
		return "", fmt.Errorf("%w: %s", ErrPDFNotCreated, pdfFile)
	}
	return pdfFile, nil
}
