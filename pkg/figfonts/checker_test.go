package figfonts

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const fontReport = `cat <<'EOF'
name                                 type              emb sub uni object ID
------------------------------------ ----------------- --- --- --- ---------
GARDHC+NimbusRomNo9L-Regu            Type1C            yes yes no      11  0
Arial                                TrueType          yes yes yes     12  0
EOF`

func TestCheckFontTypes(t *testing.T) {
	bin := t.TempDir()
	c := newTestChecker(Config{
		LatexCmd:    writeScript(t, bin, "latex", `touch "${1%.tex}.dvi"`),
		DvipdfCmd:   writeScript(t, bin, "dvipdf", `touch "${1%.dvi}.pdf"`),
		PdffontsCmd: writeScript(t, bin, "pdffonts", fontReport),
	})

	got, err := c.CheckFontTypes([]string{"a.png", "b.png"})
	if err != nil {
		t.Fatalf("CheckFontTypes failed: %v", err)
	}
	want := []string{"Type1C", "TrueType"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CheckFontTypes() mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckFontTypesCompileFailure(t *testing.T) {
	bin := t.TempDir()
	c := newTestChecker(Config{
		LatexCmd:    writeScript(t, bin, "latex", "exit 1"),
		DvipdfCmd:   writeScript(t, bin, "dvipdf", ":"),
		PdffontsCmd: writeScript(t, bin, "pdffonts", fontReport),
	})

	_, err := c.CheckFontTypes([]string{"a.png"})
	if !errors.Is(err, ErrPDFNotCreated) {
		t.Errorf("expected ErrPDFNotCreated, got %v", err)
	}
}

func TestCheckFontTypesInspectorFailure(t *testing.T) {
	bin := t.TempDir()
	c := newTestChecker(Config{
		LatexCmd:    writeScript(t, bin, "latex", `touch "${1%.tex}.dvi"`),
		DvipdfCmd:   writeScript(t, bin, "dvipdf", `touch "${1%.dvi}.pdf"`),
		PdffontsCmd: writeScript(t, bin, "pdffonts", "exit 1"),
	})

	if _, err := c.CheckFontTypes([]string{"a.png"}); err == nil {
		t.Error("expected an error when the inspector fails")
	}
}
