package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/artem13815/career/pkg/resume/content"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// paragraph styles: run size in half-points and boldness
type runStyle struct {
	size int
	bold bool
}

var (
	styleName    = runStyle{size: 36, bold: true}
	styleHeading = runStyle{size: 26, bold: true}
	styleStrong  = runStyle{size: 22, bold: true}
	styleBody    = runStyle{size: 22}
)

type docxWriter struct {
	b strings.Builder
}

func (w *docxWriter) para(text string, st runStyle, indent bool) {
	w.b.WriteString("<w:p>")
	if indent {
		w.b.WriteString(`<w:pPr><w:ind w:left="360"/></w:pPr>`)
	}
	w.b.WriteString("<w:r><w:rPr>")
	if st.bold {
		w.b.WriteString("<w:b/>")
	}
	fmt.Fprintf(&w.b, `<w:sz w:val="%d"/></w:rPr><w:t xml:space="preserve">`, st.size)
	_ = xml.EscapeText(&w.b, []byte(text))
	w.b.WriteString("</w:t></w:r></w:p>")
}

// DOCX builds a minimal WordprocessingML package with one paragraph per line.
func DOCX(doc content.Document) ([]byte, error) {
	w := &docxWriter{}
	w.para(doc.PersonalInfo.Name, styleName, false)
	if c := contactLine(doc.PersonalInfo); c != "" {
		w.para(c, styleBody, false)
	}
	if strings.TrimSpace(doc.Summary) != "" {
		w.para("PROFESSIONAL SUMMARY", styleHeading, false)
		w.para(doc.Summary, styleBody, false)
	}
	if len(doc.Experience) > 0 {
		w.para("EXPERIENCE", styleHeading, false)
		for _, e := range doc.Experience {
			w.para(experienceHeading(e), styleStrong, false)
			for _, a := range e.Achievements {
				w.para("• "+a, styleBody, true)
			}
		}
	}
	if len(doc.Skills) > 0 {
		w.para("SKILLS", styleHeading, false)
		w.para(strings.Join(doc.Skills, ", "), styleBody, false)
	}
	if len(doc.Education) > 0 {
		w.para("EDUCATION", styleHeading, false)
		for _, e := range doc.Education {
			w.para(educationLine(e), styleBody, false)
		}
	}

	body := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		w.b.String() +
		`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1000" w:right="1000" w:bottom="1000" w:left="1000" w:header="0" w:footer="0" w:gutter="0"/></w:sectPr>` +
		`</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range []struct{ name, data string }{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", body},
	} {
		f, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("docx part %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.data)); err != nil {
			return nil, fmt.Errorf("docx part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx close: %w", err)
	}
	return buf.Bytes(), nil
}
