package export

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/artem13815/career/pkg/resume/content"
)

const (
	pdfMargin = 50.0
	lineH     = 14.0
	family    = "DejaVu"
)

// DejaVu Sans Condensed covers Latin, Greek and Cyrillic. CJK glyphs are not included.
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	regularTTF []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	boldTTF []byte
)

// PDF lays the document out on A4 pages; content longer than a page continues on the next one.
func PDF(doc content.Document) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(doc.PersonalInfo.Name, true)
	pdf.AddUTF8FontFromBytes(family, "", regularTTF)
	pdf.AddUTF8FontFromBytes(family, "B", boldTTF)
	pdf.AddPage()

	pdf.SetFont(family, "B", 20)
	pdf.CellFormat(0, 26, doc.PersonalInfo.Name, "", 1, "L", false, 0, "")
	if c := contactLine(doc.PersonalInfo); c != "" {
		pdf.SetFont(family, "", 10)
		pdf.MultiCell(0, 12, c, "", "L", false)
	}

	heading := func(s string) {
		pdf.Ln(10)
		pdf.SetFont(family, "B", 13)
		pdf.CellFormat(0, 18, s, "B", 1, "L", false, 0, "")
		pdf.Ln(4)
		pdf.SetFont(family, "", 11)
	}

	if strings.TrimSpace(doc.Summary) != "" {
		heading("Professional Summary")
		pdf.MultiCell(0, lineH, doc.Summary, "", "L", false)
	}

	if len(doc.Experience) > 0 {
		heading("Experience")
		for _, e := range doc.Experience {
			pdf.SetFont(family, "B", 11)
			pdf.MultiCell(0, lineH, experienceHeading(e), "", "L", false)
			pdf.SetFont(family, "", 11)
			for _, a := range e.Achievements {
				pdf.SetX(pdfMargin + 12)
				pdf.MultiCell(0, lineH, "- "+a, "", "L", false)
			}
			pdf.Ln(4)
		}
	}

	if len(doc.Skills) > 0 {
		heading("Skills")
		pdf.MultiCell(0, lineH, strings.Join(doc.Skills, ", "), "", "L", false)
	}

	if len(doc.Education) > 0 {
		heading("Education")
		for _, e := range doc.Education {
			pdf.MultiCell(0, lineH, educationLine(e), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
