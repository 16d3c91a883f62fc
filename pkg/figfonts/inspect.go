package figfonts

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// ErrUndecodableOutput is returned when the font-listing tool's output
// decodes under none of the candidate encodings.
var ErrUndecodableOutput = errors.New("font listing output not decodable")

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// listFonts runs the font-listing tool against the compiled PDF and returns
// its decoded report split into chunks on runs of line breaks.
func (c *Checker) listFonts(pdfFile string) ([]string, error) {
	out, err := exec.Command(c.cfg.PdffontsCmd, pdfFile).Output()
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", c.cfg.PdffontsCmd, err)
	}

	text, err := decodeOutput(out)
	if err != nil {
		return nil, err
	}
	return lineBreaks.Split(text, -1), nil
}

// decodeOutput decodes raw tool output by trying a fixed ordered list of
// encodings: Shift-JIS first (pdffonts on legacy Japanese setups emits it),
// then UTF-8. The Shift-JIS decoder substitutes U+FFFD instead of failing,
// so a result containing a replacement rune counts as a failed decode.
func decodeOutput(raw []byte) (string, error) {
	s, _, err := transform.String(japanese.ShiftJIS.NewDecoder(), string(raw))
	if err == nil && !strings.ContainsRune(s, utf8.RuneError) {
		return s, nil
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	return "", ErrUndecodableOutput
}
