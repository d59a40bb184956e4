package report

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/meeting-minutes-team/meeting-minutes/internal/domain/entities"
)

const (
	fontName    = "Calibri"
	bodySize    = 11
	headingSize = 16
)

// writeDocx writes the ordered document sections to a .docx file.
// Each section starts on its own page: a bold heading run followed by its
// body paragraphs, with a page break before every section after the first.
func writeDocx(sections []entities.DocumentSection, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	for i, section := range sections {
		if i > 0 {
			doc.AddPageBreak()
		}
		addHeading(doc.AddParagraph(""), section.Heading)
		for _, line := range strings.Split(section.Body, "\n") {
			p := doc.AddParagraph("")
			p.AddText(line).Font(fontName).Size(bodySize).Color("000000")
		}
	}

	return doc.SaveTo(outputPath)
}

func addHeading(p *docx.Paragraph, text string) {
	p.AddText(text).Font(fontName).Size(headingSize).Color("000000").Bold(true)
}
