package figfonts

import (
	"regexp"
	"strconv"
)

// FontRecord is one row of the font-listing tool's tabular report.
type FontRecord struct {
	Name       string
	Type       string
	Embedded   string
	Subset     string
	Unicode    string
	ObjectNum  int
	Generation int
}

// fontLinePattern recognizes one report row: a font name, the font type
// descriptor, a two-or-more-space column gap, the emb/sub/uni flag words and
// the two-integer object id. The type column is keyed on the literal "type"
// so that Type1, Type 1C, TrueType and CID Type 0 descriptors all match,
// while header and separator lines do not. The match is anchored at the
// start of the chunk and, like the tool's column layout itself, brittle
// against names that contain multi-space runs.
var fontLinePattern = regexp.MustCompile(
	`(?i)^(?P<name>.+?)\s+(?P<type>(?:cid\s+)?(?:true)?type[\w ]*?)\s{2,}(?P<emb>\w+)\s+(?P<sub>\w+)\s+(?P<uni>\w+)\s+(?P<objnum>\d+)\s+(?P<gen>\d+)`,
)

// ParseFonts extracts one FontRecord per matching chunk. Chunks that do not
// match, such as the report's header and separator lines, are dropped.
func ParseFonts(chunks []string) []FontRecord {
	var records []FontRecord
	for _, chunk := range chunks {
		if rec, ok := parseFontLine(chunk); ok {
			records = append(records, rec)
		}
	}
	return records
}

func parseFontLine(line string) (FontRecord, bool) {
	m := fontLinePattern.FindStringSubmatch(line)
	if m == nil {
		return FontRecord{}, false
	}

	objNum, _ := strconv.Atoi(m[6])
	gen, _ := strconv.Atoi(m[7])
	return FontRecord{
		Name:       m[1],
		Type:       m[2],
		Embedded:   m[3],
		Subset:     m[4],
		Unicode:    m[5],
		ObjectNum:  objNum,
		Generation: gen,
	}, true
}
