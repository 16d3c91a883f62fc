package figfonts

// Config names the external tools the checker drives. All three are invoked
// as child processes; none of their logic lives in this repository.
type Config struct {
	// Command compiling the generated LaTeX document into a DVI file.
	LatexCmd string
	// Command converting the DVI artifact into a PDF.
	DvipdfCmd string
	// Command listing the fonts embedded in the PDF.
	PdffontsCmd string
}

func NewDefaultConfig() Config {
	return Config{
		LatexCmd:    "platex",
		DvipdfCmd:   "dvipdfmx",
		PdffontsCmd: "pdffonts",
	}
}
