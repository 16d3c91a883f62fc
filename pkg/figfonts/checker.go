// Package figfonts inspects which font types end up embedded in a PDF when a
// set of figure images is placed into a typeset document. It generates a
// throwaway LaTeX file referencing the images, compiles it with an external
// pLaTeX/dvipdfmx toolchain and parses the report of an external pdffonts
// run against the result.
package figfonts

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"go.uber.org/zap"
)

// Checker drives the document -> compile -> inspect -> parse pipeline. It
// runs strictly sequentially and blocks on every child process.
type Checker struct {
	cfg    Config
	logger *zap.SugaredLogger
}

func NewChecker(cfg Config, logger *zap.SugaredLogger) *Checker {
	return &Checker{
		cfg:    cfg,
		logger: logger,
	}
}

// CheckFontTypes compiles all images into one combined PDF and returns the
// type descriptor of every font embedded in it, in report order. Because the
// images share a single document, the result describes the invocation as a
// whole; fonts cannot be attributed to individual images.
func (c *Checker) CheckFontTypes(imageFiles []string) ([]string, error) {
	docFile, err := c.WriteDocument(imageFiles)
	if err != nil {
		return nil, err
	}

	pdfFile, err := c.CompilePDF(docFile)
	if err != nil {
		return nil, err
	}
	if n, err := api.PageCountFile(pdfFile); err == nil {
		c.logger.Debugf("compiled %s (%d pages)", pdfFile, n)
	}

	chunks, err := c.listFonts(pdfFile)
	if err != nil {
		return nil, err
	}

	var fontTypes []string
	for _, rec := range ParseFonts(chunks) {
		fontTypes = append(fontTypes, rec.Type)
	}
	return fontTypes, nil
}
