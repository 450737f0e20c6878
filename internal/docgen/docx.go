package docgen

import (
	"github.com/gomutex/godocx"
)

const (
	fontName = "Calibri"
	fontSize = 11
)

// writeDocx renders a block plan into a .docx file at outputPath.
func writeDocx(blocks []block, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	for _, b := range blocks {
		p := doc.AddParagraph("")
		size, bold := blockStyle(b.kind)

		prefix := ""
		if b.kind == kindBullet {
			prefix = "• "
		}

		for i, r := range b.runs {
			text := r.text
			if i == 0 {
				text = prefix + text
			}
			added := p.AddText(text).Font(fontName).Size(size).Color("000000")
			if bold || r.bold {
				added.Bold(true)
			}
		}
	}

	return doc.SaveTo(outputPath)
}

func blockStyle(kind blockKind) (size uint64, bold bool) {
	switch kind {
	case kindTitle:
		return 16, true
	case kindHeading1:
		return 14, true
	case kindHeading2:
		return 12, true
	case kindDateLine:
		return fontSize, true
	default:
		return fontSize, false
	}
}
