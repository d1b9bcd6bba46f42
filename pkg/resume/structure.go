package resume

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/artem13815/career/pkg/llm"
	"github.com/artem13815/career/pkg/resume/content"
)

const maxStructureChars = 12000

// structurer turns extracted resume text into a content.Document with an LLM.
type structurer struct {
	llm      llm.ChatModel
	maxChars int
}

func (s structurer) Structure(ctx context.Context, text string) (content.Document, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return content.Document{}, errors.New("empty resume text")
	}
	if s.llm == nil {
		return content.Document{}, errors.New("llm is not configured")
	}
	if len(text) > s.maxChars {
		text = text[:s.maxChars]
	}

	system := "You extract structured data from resumes. Return STRICT JSON only, no markdown or commentary. Always return empty arrays as [], never null. Do not invent facts."
	user := fmt.Sprintf(
		"Resume text:\n<<<\n%s\n>>>\n\nReturn exactly one JSON object:\n"+
			"{\"personalInfo\":{\"name\":string,\"email\":string,\"phone\":string,\"location\":string,\"linkedinUrl\":string},"+
			"\"summary\":string,\"experience\":[{\"title\":string,\"company\":string,\"duration\":string,\"achievements\":[string]}],"+
			"\"skills\":[string],\"education\":[{\"degree\":string,\"institution\":string,\"year\":string}]}\n"+
			"Rules:\n- No extra fields\n- No markdown\n- Empty lists are []\n",
		text,
	)
	raw, err := s.llm.Ask(ctx, system, user)
	if err != nil {
		return content.Document{}, err
	}
	raw = strings.TrimSpace(raw)

	var doc content.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		i, j := strings.Index(raw, "{"), strings.LastIndex(raw, "}")
		if i < 0 || j <= i {
			return content.Document{}, fmt.Errorf("model reply is not JSON: %w", err)
		}
		if err := json.Unmarshal([]byte(raw[i:j+1]), &doc); err != nil {
			return content.Document{}, fmt.Errorf("model reply is not JSON: %w", err)
		}
	}
	doc.FormatVersion = content.CurrentVersion
	dropBlank(&doc)
	doc.Normalize()
	if err := doc.Validate(); err != nil {
		return content.Document{}, err
	}
	return doc, nil
}

// dropBlank removes entries a model tends to emit half-filled.
func dropBlank(d *content.Document) {
	skills := d.Skills[:0]
	for _, s := range d.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	d.Skills = skills

	exp := d.Experience[:0]
	for _, e := range d.Experience {
		if strings.TrimSpace(e.Title) != "" {
			exp = append(exp, e)
		}
	}
	d.Experience = exp

	edu := d.Education[:0]
	for _, e := range d.Education {
		if strings.TrimSpace(e.Degree) != "" || strings.TrimSpace(e.Institution) != "" {
			edu = append(edu, e)
		}
	}
	d.Education = edu
}

// summaryOnly keeps the extracted text when structuring is unavailable.
func summaryOnly(ownerName, text string) content.Document {
	const maxSummary = 2000
	text = strings.TrimSpace(text)
	if r := []rune(text); len(r) > maxSummary {
		text = string(r[:maxSummary])
	}
	d := content.Document{
		FormatVersion: content.CurrentVersion,
		PersonalInfo:  content.PersonalInfo{Name: ownerName},
		Summary:       text,
	}
	d.Normalize()
	return d
}
