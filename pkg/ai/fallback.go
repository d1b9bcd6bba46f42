package ai

import (
	"fmt"
	"strings"

	"github.com/artem13815/career/pkg/nlp"
	"github.com/artem13815/career/pkg/resume/content"
)

const fallbackAdvice = "I'm sorry, I couldn't generate a response at this time."

func fallbackResume(req ResumeRequest) content.Document {
	doc := content.Fallback(req.TargetRole, req.LinkedinURL)
	if p := req.Profile; p != nil && p.Verified {
		if name := strings.TrimSpace(p.FirstName + " " + p.LastName); name != "" {
			doc.PersonalInfo.Name = name
		}
		if p.Email != "" {
			doc.PersonalInfo.Email = p.Email
		}
		if p.Location != "" {
			doc.PersonalInfo.Location = p.Location
		}
	}
	return doc
}

// requiredSkills prefers the job's own list and falls back to vocabulary hits.
func requiredSkills(listed []string, texts ...string) []string {
	out := []string{}
	for _, s := range listed {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	if len(out) > 0 {
		return out
	}
	return nlp.ExtractSkills(strings.Join(texts, "\n"), nlp.Vocabulary)
}

func fallbackMatch(req MatchRequest) MatchAnalysis {
	required := requiredSkills(req.JobSkills, req.Requirements, req.Description)
	matched, missing := nlp.Partition(required, req.UserSkills)

	score := 0
	if len(required) > 0 {
		score = len(matched) * 100 / len(required)
	} else {
		// nothing recognizable in the posting: credit mentioned user skills
		text := nlp.NormalizeText(req.Requirements + " " + req.Description)
		hits := 0
		for _, s := range req.UserSkills {
			if nlp.HasSkill(text, s) {
				hits++
			}
		}
		score = min(85, hits*20)
	}

	skills := make([]SkillMatch, 0, len(required))
	for _, s := range matched {
		skills = append(skills, SkillMatch{Skill: s, UserLevel: "intermediate", Required: true, Match: true})
	}
	for _, s := range missing {
		skills = append(skills, SkillMatch{Skill: s, UserLevel: "beginner", Required: true, Match: false})
	}

	recs := []string{"Highlight relevant experience in your application"}
	if len(missing) > 0 {
		recs = append([]string{"Consider developing: " + strings.Join(missing, ", ")}, recs...)
	}
	m := MatchAnalysis{
		MatchScore:      score,
		SkillsMatch:     skills,
		Gaps:            missing,
		Recommendations: recs,
		Source:          SourceFallback,
	}
	m.normalize()
	return m
}

func fallbackPost(req PostRequest) string {
	details := strings.TrimSpace(req.Details)
	if details == "" {
		details = "Sharing thoughts on this important topic."
	}
	tag := hashtag(req.Topic)
	return fmt.Sprintf(`Excited to share insights about %[1]s!

%[2]s

Key takeaways:
• Innovation drives growth
• Collaboration leads to success
• Continuous learning is essential

What are your thoughts on %[1]s? I'd love to hear your perspectives in the comments!

#%[3]s #Professional #CareerGrowth #LinkedIn`, req.Topic, details, tag)
}

func hashtag(topic string) string {
	var b strings.Builder
	for _, w := range strings.Fields(nlp.NormalizeText(topic)) {
		r := []rune(w)
		b.WriteString(strings.ToUpper(string(r[0])) + string(r[1:]))
	}
	if b.Len() == 0 {
		return "Career"
	}
	return b.String()
}

func fallbackPolish(doc content.Document, job JobDescriptor) PolishResult {
	required := requiredSkills(job.Skills, job.Requirements, job.Description)
	present, missing := nlp.Partition(required, doc.Skills)

	score := 50
	if len(required) > 0 {
		score = 40 + len(present)*60/len(required)
	}

	relevant := []string{}
	jobText := nlp.NormalizeText(job.Title + " " + job.Requirements + " " + job.Description)
	for _, e := range doc.Experience {
		for _, w := range strings.Fields(nlp.NormalizeText(e.Title)) {
			if len(w) > 3 && nlp.ContainsPhrase(jobText, w) {
				relevant = append(relevant, e.Title)
				break
			}
		}
	}

	suggestions := []PolishSuggestion{{
		Section:   "summary",
		Priority:  "high",
		Type:      "rewrite",
		Current:   doc.Summary,
		Suggested: fmt.Sprintf("Lead with your fit for the %s role and name the strongest matching skills.", job.Title),
		Reasoning: "Recruiters read the summary first; it should mirror the target role.",
	}}
	if len(missing) > 0 {
		suggestions = append(suggestions, PolishSuggestion{
			Section:   "skills",
			Priority:  "high",
			Type:      "add",
			Current:   strings.Join(doc.Skills, ", "),
			Suggested: "Add the skills you genuinely have among: " + strings.Join(missing, ", "),
			Reasoning: "Applicant tracking systems filter on the keywords listed in the posting.",
		})
	}
	if len(doc.Experience) > 0 {
		suggestions = append(suggestions, PolishSuggestion{
			Section:   "experience",
			Priority:  "medium",
			Type:      "quantify",
			Current:   doc.Experience[0].Title,
			Suggested: "Add measurable outcomes (numbers, percentages, scale) to each achievement.",
			Reasoning: "Quantified results are more convincing than responsibilities.",
		})
	}

	gaps := missing
	if len(gaps) > 3 {
		gaps = gaps[:3]
	}
	p := PolishResult{
		OverallScore: score,
		KeyStrengths: present,
		CriticalGaps: gaps,
		Suggestions:  suggestions,
		KeywordOptimization: KeywordOptimization{
			PresentKeywords: present,
			MissingKeywords: missing,
			Recommendation:  "Use the posting's wording for skills you have, in both the skills list and achievements.",
		},
		ExperienceOptimization: ExperienceOptimization{
			RelevantExperience: relevant,
			Recommendation:     "Move the most relevant roles and achievements to the top of each section.",
		},
		AdditionalRecommendations: []string{
			"Tailor the resume title to the job title",
			"Keep the resume to one page for this application",
		},
		Source: SourceFallback,
	}
	p.normalize()
	return p
}

func fallbackImprove(doc content.Document) []string {
	out := []string{}
	if len(strings.Fields(doc.Summary)) < 25 {
		out = append(out, "Expand the professional summary to two or three sentences that state your focus and impact.")
	}
	for _, e := range doc.Experience {
		if len(e.Achievements) < 2 {
			out = append(out, fmt.Sprintf("Add at least two quantified achievements for %s.", e.Title))
		}
	}
	if len(doc.Skills) < 5 {
		out = append(out, "List more skills, grouping technical and soft skills.")
	}
	if doc.PersonalInfo.LinkedinURL == "" {
		out = append(out, "Add your LinkedIn profile URL to the header.")
	}
	if len(out) < 3 {
		out = append(out, "Start each achievement with a strong action verb.", "Mirror the keywords of the roles you target.")
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}
