package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	pdfreader "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/career/pkg/apperr"
	"github.com/artem13815/career/pkg/resume/content"
)

func sampleDoc() content.Document {
	return content.Document{
		FormatVersion: content.CurrentVersion,
		PersonalInfo: content.PersonalInfo{
			Name:     "Chenkai Xie",
			Email:    "chenkai.xie@example.com",
			Location: "Seattle, WA",
		},
		Summary: "Backend engineer & mentor.",
		Experience: []content.Experience{
			{Title: "Staff Engineer", Company: "Acme", Duration: "2021 - Present", Achievements: []string{"Cut p99 latency by 40%"}},
			{Title: "Software Engineer", Company: "Initech", Duration: "2017 - 2021"},
		},
		Skills:    []string{"Go", "PostgreSQL", "Kubernetes"},
		Education: []content.Education{{Degree: "BSc Computer Science", Institution: "UW", Year: "2017"}},
	}
}

func pdfText(t *testing.T, data []byte) string {
	t.Helper()
	r, err := pdfreader.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	rs, err := r.GetPlainText()
	require.NoError(t, err)
	out, err := io.ReadAll(rs)
	require.NoError(t, err)
	return string(out)
}

func TestPDFContainsNameTitlesAndSkills(t *testing.T) {
	cases := []struct {
		name   string
		person string
		title  string
		skill  string
	}{
		{name: "ascii", person: "Chenkai Xie"},
		{name: "western european", person: "Zoë Ångström"},
		{name: "central european", person: "Łukasz Żółć", title: "Główny inżynier", skill: "Zarządzanie"},
		{name: "cyrillic", person: "Иван Петров", title: "Ведущий разработчик", skill: "Базы данных"},
		{name: "greek", person: "Γιώργος Παπαδόπουλος"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := sampleDoc()
			doc.PersonalInfo.Name = tc.person
			if tc.title != "" {
				doc.Experience[0].Title = tc.title
			}
			if tc.skill != "" {
				doc.Skills = append(doc.Skills, tc.skill)
			}
			require.NoError(t, doc.Validate())

			data, err := PDF(doc)
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

			text := pdfText(t, data)
			assert.Contains(t, text, doc.PersonalInfo.Name)
			for _, e := range doc.Experience {
				assert.Contains(t, text, e.Title)
			}
			for _, s := range doc.Skills {
				assert.Contains(t, text, s)
			}
		})
	}
}

func TestPDFLongDocumentPaginates(t *testing.T) {
	doc := sampleDoc()
	for i := range 60 {
		doc.Experience = append(doc.Experience, content.Experience{
			Title:        fmt.Sprintf("Role %d", i),
			Achievements: []string{"Shipped things", "Fixed things"},
		})
	}
	data, err := PDF(doc)
	require.NoError(t, err)
	r, err := pdfreader.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Greater(t, r.NumPage(), 1)
}

func TestDOCXPackage(t *testing.T) {
	data, err := DOCX(sampleDoc())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	parts := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		_ = rc.Close()
		parts[f.Name] = string(b)
	}
	require.Contains(t, parts, "[Content_Types].xml")
	require.Contains(t, parts, "_rels/.rels")
	body := parts["word/document.xml"]
	for _, s := range []string{"Chenkai Xie", "PROFESSIONAL SUMMARY", "EXPERIENCE", "SKILLS", "EDUCATION", "Staff Engineer - Acme (2021 - Present)", "Go, PostgreSQL, Kubernetes"} {
		assert.Contains(t, body, s)
	}
	assert.Contains(t, body, "Backend engineer &amp; mentor.")
	assert.False(t, strings.Contains(body, "& mentor"))
}

func TestRender(t *testing.T) {
	doc := sampleDoc()
	tests := []struct {
		name    string
		format  Format
		doc     *content.Document
		wantErr error
	}{
		{name: "pdf", format: FormatPDF, doc: &doc},
		{name: "docx", format: FormatDOCX, doc: &doc},
		{name: "no content pdf", format: FormatPDF, wantErr: apperr.ErrNoContent},
		{name: "no content docx", format: FormatDOCX, wantErr: apperr.ErrNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Render(tt.format, tt.doc)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, data)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)
	assert.Equal(t, "application/pdf", f.ContentType())

	_, err = ParseFormat("txt")
	assert.True(t, apperr.IsValidation(err))
	assert.EqualError(t, err, "Invalid format. Use 'pdf' or 'docx'")

	assert.Equal(t, "Senior_Engineer_Resume.docx", FormatDOCX.Filename("Senior Engineer Resume"))
	assert.Equal(t, "resume.pdf", FormatPDF.Filename("  "))
}
