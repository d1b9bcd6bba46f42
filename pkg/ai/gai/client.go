// Package gai is the HTTP client of the companion Python generation service.
package gai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/artem13815/career/pkg/ai"
	"github.com/artem13815/career/pkg/resume/content"
)

// Client talks to the service's /api/linkedin endpoints. Every call is bounded
// by the client timeout; a timeout is reported like any transport failure.
type Client struct {
	BaseURL string
	httpDo  *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpDo:  &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Success       bool            `json:"success"`
	ResumeContent json.RawMessage `json:"resume_content,omitempty"`
	MatchAnalysis json.RawMessage `json:"match_analysis,omitempty"`
	PostContent   string          `json:"post_content,omitempty"`
	Error         string          `json:"error,omitempty"`
}

func (c *Client) post(ctx context.Context, path string, body any) (envelope, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return envelope{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return envelope{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return envelope{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return envelope{}, fmt.Errorf("gai http %d", resp.StatusCode)
	}
	var out envelope
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return envelope{}, fmt.Errorf("decode gai response: %w", err)
	}
	if !out.Success {
		if out.Error == "" {
			out.Error = "unsuccessful response"
		}
		return envelope{}, errors.New(out.Error)
	}
	return out, nil
}

func (c *Client) GenerateResume(ctx context.Context, req ai.ResumeRequest) (content.Document, error) {
	env, err := c.post(ctx, "/api/linkedin/generate-resume", map[string]any{
		"linkedin_url": req.LinkedinURL,
		"target_role":  req.TargetRole,
		"user_profile": req.Profile,
	})
	if err != nil {
		return content.Document{}, err
	}
	if len(env.ResumeContent) == 0 {
		return content.Document{}, errors.New("gai response has no resume_content")
	}
	return content.Decode(env.ResumeContent)
}

// compatibility is the service's native job-match shape.
type compatibility struct {
	CompatibilityScore *int     `json:"compatibilityScore"`
	MatchingSkills     []string `json:"matchingSkills"`
	MissingSkills      []string `json:"missingSkills"`
	Recommendations    []string `json:"recommendations"`
}

func (c *Client) AnalyzeJobMatch(ctx context.Context, req ai.MatchRequest) (ai.MatchAnalysis, error) {
	requirements := req.Requirements
	if len(req.JobSkills) > 0 {
		requirements = strings.TrimSpace(requirements + "\nSkills: " + strings.Join(req.JobSkills, ", "))
	}
	env, err := c.post(ctx, "/api/linkedin/analyze-job-match", map[string]any{
		"user_skills":      req.UserSkills,
		"job_requirements": requirements,
		"job_description":  req.Description,
	})
	if err != nil {
		return ai.MatchAnalysis{}, err
	}
	if len(env.MatchAnalysis) == 0 {
		return ai.MatchAnalysis{}, errors.New("gai response has no match_analysis")
	}

	var native compatibility
	if err := json.Unmarshal(env.MatchAnalysis, &native); err == nil && native.CompatibilityScore != nil {
		m := ai.MatchAnalysis{
			MatchScore:      *native.CompatibilityScore,
			Gaps:            native.MissingSkills,
			Recommendations: native.Recommendations,
		}
		for _, s := range native.MatchingSkills {
			m.SkillsMatch = append(m.SkillsMatch, ai.SkillMatch{Skill: s, UserLevel: "intermediate", Required: true, Match: true})
		}
		for _, s := range native.MissingSkills {
			m.SkillsMatch = append(m.SkillsMatch, ai.SkillMatch{Skill: s, UserLevel: "beginner", Required: true, Match: false})
		}
		return m, nil
	}
	var m ai.MatchAnalysis
	if err := json.Unmarshal(env.MatchAnalysis, &m); err != nil {
		return ai.MatchAnalysis{}, fmt.Errorf("decode match_analysis: %w", err)
	}
	return m, nil
}

func (c *Client) GeneratePost(ctx context.Context, req ai.PostRequest) (string, error) {
	env, err := c.post(ctx, "/api/linkedin/generate-post", map[string]any{
		"topic":        req.Topic,
		"details":      req.Details,
		"user_profile": req.Profile,
	})
	if err != nil {
		return "", err
	}
	return env.PostContent, nil
}

// Healthy reports whether GET /health answers {"status":"healthy"}.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpDo.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	var out struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false
	}
	return out.Status == "healthy"
}
