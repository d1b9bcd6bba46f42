// Package content defines the structured resume document stored in Resume.Content.
package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/artem13815/career/pkg/apperr"
)

// CurrentVersion is the only document version this build reads and writes.
const CurrentVersion = 1

type PersonalInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	LinkedinURL string `json:"linkedinUrl,omitempty"`
}

type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Document is the resume body shared by generation, editing and export.
type Document struct {
	FormatVersion int          `json:"formatVersion"`
	PersonalInfo  PersonalInfo `json:"personalInfo"`
	Summary       string       `json:"summary"`
	Experience    []Experience `json:"experience"`
	Skills        []string     `json:"skills"`
	Education     []Education  `json:"education"`
}

// Normalize stamps the current version and replaces nil slices with empty ones.
func (d *Document) Normalize() {
	if d.FormatVersion == 0 {
		d.FormatVersion = CurrentVersion
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	for i := range d.Experience {
		if d.Experience[i].Achievements == nil {
			d.Experience[i].Achievements = []string{}
		}
	}
	if d.Skills == nil {
		d.Skills = []string{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
}

// Validate checks the document shape. Errors are *apperr.ValidationError.
func (d Document) Validate() error {
	if d.FormatVersion != CurrentVersion {
		return apperr.Validation("content.formatVersion", fmt.Sprintf("unsupported version %d", d.FormatVersion))
	}
	for i, e := range d.Experience {
		if strings.TrimSpace(e.Title) == "" {
			return apperr.Validation(fmt.Sprintf("content.experience[%d].title", i), "is required")
		}
	}
	for i, e := range d.Education {
		if strings.TrimSpace(e.Degree) == "" && strings.TrimSpace(e.Institution) == "" {
			return apperr.Validation(fmt.Sprintf("content.education[%d]", i), "degree or institution is required")
		}
	}
	for i, s := range d.Skills {
		if strings.TrimSpace(s) == "" {
			return apperr.Validation(fmt.Sprintf("content.skills[%d]", i), "is blank")
		}
	}
	return nil
}

// Decode parses and validates a serialized document.
// A document without formatVersion is read as version 1.
func Decode(raw []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(raw, &d); err != nil {
		return Document{}, apperr.Validation("content", "is not a resume document")
	}
	d.Normalize()
	if err := d.Validate(); err != nil {
		return Document{}, err
	}
	return d, nil
}

// Encode normalizes, validates and serializes d.
func Encode(d Document) ([]byte, error) {
	d.Normalize()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(d)
}
