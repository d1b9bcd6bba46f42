// Package ai routes generation requests through the companion GAI service,
// then a chat LLM, and finally static content.
package ai

import (
	"github.com/artem13815/career/pkg/resume/content"
)

// Source names the provider that produced a result.
type Source string

const (
	SourceGAI      Source = "gai"
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Degraded reports whether the result came from static content.
func (s Source) Degraded() bool { return s == SourceFallback }

// UserProfile is the subset of a LinkedIn profile passed to generators.
type UserProfile struct {
	ProfileID string `json:"profileId,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Headline  string `json:"headline,omitempty"`
	Location  string `json:"location,omitempty"`
	Email     string `json:"email,omitempty"`
	Verified  bool   `json:"verified"`
}

type ResumeRequest struct {
	LinkedinURL string
	TargetRole  string
	Profile     *UserProfile
}

type ResumeResult struct {
	Content content.Document
	Source  Source
}

type MatchRequest struct {
	UserSkills   []string
	JobSkills    []string
	Requirements string
	Description  string
}

type SkillMatch struct {
	Skill     string `json:"skill"`
	UserLevel string `json:"userLevel"`
	Required  bool   `json:"required"`
	Match     bool   `json:"match"`
}

type MatchAnalysis struct {
	MatchScore      int          `json:"matchScore"`
	SkillsMatch     []SkillMatch `json:"skillsMatch"`
	Gaps            []string     `json:"gaps"`
	Recommendations []string     `json:"recommendations"`
	Source          Source       `json:"source"`
}

func (m *MatchAnalysis) normalize() {
	if m.MatchScore < 0 {
		m.MatchScore = 0
	}
	if m.MatchScore > 100 {
		m.MatchScore = 100
	}
	if m.SkillsMatch == nil {
		m.SkillsMatch = []SkillMatch{}
	}
	if m.Gaps == nil {
		m.Gaps = []string{}
	}
	if m.Recommendations == nil {
		m.Recommendations = []string{}
	}
}

type PostRequest struct {
	Topic   string
	Details string
	Profile *UserProfile
}

type PostResult struct {
	Content string
	Source  Source
}

// JobDescriptor is the target job of a polish request.
type JobDescriptor struct {
	Title        string   `json:"title"`
	Company      string   `json:"company,omitempty"`
	Industry     string   `json:"industry,omitempty"`
	Location     string   `json:"location,omitempty"`
	WorkMode     string   `json:"workMode,omitempty"`
	SalaryMin    *int     `json:"salaryMin,omitempty"`
	SalaryMax    *int     `json:"salaryMax,omitempty"`
	Skills       []string `json:"skills"`
	Requirements string   `json:"requirements,omitempty"`
	Description  string   `json:"description,omitempty"`
}

type PolishSuggestion struct {
	Section   string `json:"section"`
	Priority  string `json:"priority"`
	Type      string `json:"type"`
	Current   string `json:"current"`
	Suggested string `json:"suggested"`
	Reasoning string `json:"reasoning"`
}

type KeywordOptimization struct {
	PresentKeywords []string `json:"presentKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Recommendation  string   `json:"recommendation"`
}

type ExperienceOptimization struct {
	RelevantExperience []string `json:"relevantExperience"`
	Recommendation     string   `json:"recommendation"`
}

// PolishResult is a structured critique of a resume against one job.
type PolishResult struct {
	OverallScore              int                    `json:"overallScore"`
	KeyStrengths              []string               `json:"keyStrengths"`
	CriticalGaps              []string               `json:"criticalGaps"`
	Suggestions               []PolishSuggestion     `json:"suggestions"`
	KeywordOptimization       KeywordOptimization    `json:"keywordOptimization"`
	ExperienceOptimization    ExperienceOptimization `json:"experienceOptimization"`
	AdditionalRecommendations []string               `json:"additionalRecommendations"`
	Source                    Source                 `json:"source"`
}

func (p *PolishResult) normalize() {
	if p.OverallScore < 0 {
		p.OverallScore = 0
	}
	if p.OverallScore > 100 {
		p.OverallScore = 100
	}
	for _, s := range []*[]string{
		&p.KeyStrengths, &p.CriticalGaps, &p.AdditionalRecommendations,
		&p.KeywordOptimization.PresentKeywords, &p.KeywordOptimization.MissingKeywords,
		&p.ExperienceOptimization.RelevantExperience,
	} {
		if *s == nil {
			*s = []string{}
		}
	}
	if p.Suggestions == nil {
		p.Suggestions = []PolishSuggestion{}
	}
}

type ImproveResult struct {
	Suggestions []string
	Source      Source
}

type AdviceRequest struct {
	Message string
	Type    string
	Context map[string]any
}

type AdviceResult struct {
	Response string
	Source   Source
}
