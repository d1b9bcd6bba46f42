// Package export renders resume documents to downloadable files.
package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/artem13815/career/pkg/apperr"
	"github.com/artem13815/career/pkg/resume/content"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

var errFormat = apperr.Validation("", "Invalid format. Use 'pdf' or 'docx'")

// ParseFormat accepts "pdf" or "docx", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatDOCX:
		return f, nil
	}
	return "", errFormat
}

func (f Format) ContentType() string {
	if f == FormatDOCX {
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/pdf"
}

var reUnsafe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Filename builds an attachment name such as "Senior_Engineer_Resume.pdf".
func (f Format) Filename(title string) string {
	base := strings.Trim(reUnsafe.ReplaceAllString(strings.TrimSpace(title), "_"), "_")
	if base == "" {
		base = "resume"
	}
	return fmt.Sprintf("%s.%s", base, f)
}

// Render produces the file bytes. A nil document yields apperr.ErrNoContent and no bytes.
func Render(f Format, doc *content.Document) ([]byte, error) {
	if doc == nil {
		return nil, apperr.ErrNoContent
	}
	switch f {
	case FormatPDF:
		return PDF(*doc)
	case FormatDOCX:
		return DOCX(*doc)
	}
	return nil, errFormat
}

func contactLine(p content.PersonalInfo) string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.Email, p.Phone, p.Location, p.LinkedinURL} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " | ")
}

func experienceHeading(e content.Experience) string {
	h := e.Title
	if e.Company != "" {
		h += " - " + e.Company
	}
	if e.Duration != "" {
		h += " (" + e.Duration + ")"
	}
	return h
}

func educationLine(e content.Education) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{e.Degree, e.Institution, e.Year} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
