package resume

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"code.sajari.com/docconv"
	pdf "github.com/ledongthuc/pdf"
)

var errUnsupported = errors.New("unsupported file format: only pdf, doc and docx are allowed")

// AllowedExtension reports whether an upload with this filename is accepted.
func AllowedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".doc", ".docx":
		return true
	}
	return false
}

// ParseText extracts plain text from supported resume formats.
func ParseText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
		if err != nil {
			return "", err
		}
		return normalizeWhitespace(text), nil
	case ".doc":
		// needs the wvText tool on PATH
		text, _, err := docconv.ConvertDoc(bytes.NewReader(data))
		if err != nil {
			return "", err
		}
		return normalizeWhitespace(text), nil
	default:
		return "", errUnsupported
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

var (
	reBlanks   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\n+`)
)

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reBlanks.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
