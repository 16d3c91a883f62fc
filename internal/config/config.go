package config

import (
	"github.com/hausen6/figure-fonts-checker/internal/env"
)

type Config struct {
	ENV   string
	Tools ToolsConfig
}

// ToolsConfig names the external commands the pipeline shells out to. They
// are overridable through the environment so alternative engines (uplatex,
// dvipdfm, a pdffonts from a non-standard poppler install) can be used
// without code changes.
type ToolsConfig struct {
	LatexCmd    string
	DvipdfCmd   string
	PdffontsCmd string
}

func GetConfig() Config {
	return Config{
		ENV: env.GetString("ENV", "development"),
		Tools: ToolsConfig{
			LatexCmd:    env.GetString("FFC_LATEX_CMD", "platex"),
			DvipdfCmd:   env.GetString("FFC_DVIPDF_CMD", "dvipdfmx"),
			PdffontsCmd: env.GetString("FFC_PDFFONTS_CMD", "pdffonts"),
		},
	}
}
