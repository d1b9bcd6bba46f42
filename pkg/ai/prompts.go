package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/artem13815/career/pkg/resume/content"
)

const resumeSchema = `{"personalInfo":{"name":string,"email":string,"phone":string,"location":string,"linkedinUrl":string},"summary":string,"experience":[{"title":string,"company":string,"duration":string,"achievements":[string]}],"skills":[string],"education":[{"degree":string,"institution":string,"year":string}]}`

func (g *Gateway) llmResume(ctx context.Context, req ResumeRequest) (content.Document, error) {
	system := "You are a professional resume writer who creates compelling, ATS-optimized resumes. Always respond with valid JSON."
	var b strings.Builder
	b.WriteString("Generate a comprehensive resume based on the following information:\n")
	if req.LinkedinURL != "" {
		fmt.Fprintf(&b, "LinkedIn URL: %s\n", req.LinkedinURL)
	}
	if req.Profile != nil {
		p, _ := json.Marshal(req.Profile)
		fmt.Fprintf(&b, "User Profile: %s\n", p)
	}
	if req.TargetRole != "" {
		fmt.Fprintf(&b, "Target Role: %s\n", req.TargetRole)
	}
	b.WriteString("Include a 2-3 sentence professional summary, work experience with quantified achievements, technical and soft skills, and education.\n")
	b.WriteString("Return one JSON object with exactly this structure: " + resumeSchema)

	raw, err := g.llm.Ask(ctx, system, b.String())
	if err != nil {
		return content.Document{}, err
	}
	var doc content.Document
	if err := decodeJSON(raw, &doc); err != nil {
		return content.Document{}, err
	}
	doc.FormatVersion = content.CurrentVersion
	if doc.PersonalInfo.LinkedinURL == "" {
		doc.PersonalInfo.LinkedinURL = req.LinkedinURL
	}
	return checked(doc)
}

func (g *Gateway) llmMatch(ctx context.Context, req MatchRequest) (MatchAnalysis, error) {
	system := "You are a career counselor who analyzes job fit and provides detailed assessments. Always respond with valid JSON."
	user := fmt.Sprintf(
		"Analyze job match for a candidate with these skills: %s\nJob Skills: %s\nJob Requirements: %s\nJob Description: %s\n\n"+
			"Return one JSON object: {\"matchScore\": 0-100, \"skillsMatch\": [{\"skill\": string, \"userLevel\": \"beginner|intermediate|advanced|expert\", \"required\": bool, \"match\": bool}], \"gaps\": [string], \"recommendations\": [string]}",
		strings.Join(req.UserSkills, ", "),
		strings.Join(req.JobSkills, ", "),
		req.Requirements,
		req.Description,
	)
	raw, err := g.llm.Ask(ctx, system, user)
	if err != nil {
		return MatchAnalysis{}, err
	}
	var m MatchAnalysis
	if err := decodeJSON(raw, &m); err != nil {
		return MatchAnalysis{}, err
	}
	return m, nil
}

func (g *Gateway) llmPost(ctx context.Context, req PostRequest) (string, error) {
	system := "You are a social media expert who creates engaging LinkedIn content for professionals."
	background := "{}"
	if req.Profile != nil {
		p, _ := json.Marshal(req.Profile)
		background = string(p)
	}
	user := fmt.Sprintf(
		"Create a professional LinkedIn post for:\nTopic: %s\nDetails: %s\nUser Background: %s\n\n"+
			"The post should be professional and engaging, include relevant hashtags, be optimized for LinkedIn engagement and run 150-300 words.\nReturn just the post content.",
		req.Topic, req.Details, background,
	)
	raw, err := g.llm.Ask(ctx, system, user)
	if err != nil {
		return "", err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty post")
	}
	return raw, nil
}

func (g *Gateway) llmPolish(ctx context.Context, doc content.Document, job JobDescriptor) (PolishResult, error) {
	system := "You are an expert resume coach. Critique a resume against one target job. Always respond with valid JSON."
	resumeJSON, _ := json.Marshal(doc)
	jobJSON, _ := json.Marshal(job)
	user := fmt.Sprintf(
		"Resume: %s\nTarget job: %s\n\nReturn one JSON object: {\"overallScore\": 0-100, \"keyStrengths\": [string], \"criticalGaps\": [string], "+
			"\"suggestions\": [{\"section\": string, \"priority\": \"high|medium|low\", \"type\": string, \"current\": string, \"suggested\": string, \"reasoning\": string}], "+
			"\"keywordOptimization\": {\"presentKeywords\": [string], \"missingKeywords\": [string], \"recommendation\": string}, "+
			"\"experienceOptimization\": {\"relevantExperience\": [string], \"recommendation\": string}, \"additionalRecommendations\": [string]}",
		resumeJSON, jobJSON,
	)
	raw, err := g.llm.Ask(ctx, system, user)
	if err != nil {
		return PolishResult{}, err
	}
	var p PolishResult
	if err := decodeJSON(raw, &p); err != nil {
		return PolishResult{}, err
	}
	return p, nil
}

func (g *Gateway) llmImprove(ctx context.Context, doc content.Document) ([]string, error) {
	system := "You are a resume optimization expert. Analyze resumes and provide actionable improvement suggestions. Always respond with valid JSON."
	resumeJSON, _ := json.Marshal(doc)
	user := fmt.Sprintf("Analyze this resume and provide 3-5 specific improvement suggestions as {\"suggestions\": [string]}: %s", resumeJSON)
	raw, err := g.llm.Ask(ctx, system, user)
	if err != nil {
		return nil, err
	}
	var out struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := decodeJSON(raw, &out); err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

func (g *Gateway) llmAdvice(ctx context.Context, req AdviceRequest) (string, error) {
	system := "You are a professional career advisor with expertise in resume optimization, job search strategies, interview preparation, career development and skill assessment. " +
		"Provide helpful, actionable advice. Keep responses concise but thorough."
	if req.Type != "" && req.Type != "general" {
		system += " The user is asking about: " + strings.ReplaceAll(req.Type, "_", " ") + "."
	}
	userCtx, _ := json.Marshal(req.Context)
	raw, err := g.llm.Ask(ctx, system, fmt.Sprintf("User Context: %s\nQuestion: %s", userCtx, req.Message))
	if err != nil {
		return "", err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallbackAdvice, nil
	}
	return raw, nil
}
