package nlp

import "strings"

var aliases = map[string][]string{
	"postgres":         {"postgresql"},
	"postgresql":       {"postgres"},
	"k8s":              {"kubernetes"},
	"kubernetes":       {"k8s"},
	"golang":           {"go"},
	"go":               {"golang"},
	"js":               {"javascript"},
	"javascript":       {"js"},
	"ts":               {"typescript"},
	"typescript":       {"ts"},
	"rest":             {"rest api"},
	"rest api":         {"rest"},
	"ci cd":            {"cicd"},
	"cicd":             {"ci cd"},
	"ml":               {"machine learning"},
	"machine learning": {"ml"},
	"ui ux":            {"ux ui", "ux"},
	"node js":          {"nodejs", "node"},
	"react":            {"react js", "reactjs"},
}

// Vocabulary is matched against free text when a job does not list its skills.
var Vocabulary = []string{
	"Python", "Go", "Java", "JavaScript", "TypeScript", "React", "Node.js", "SQL",
	"PostgreSQL", "AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Git",
	"Machine Learning", "Data Analysis", "Product Management", "Project Management",
	"Agile", "Scrum", "UI/UX", "Figma", "Leadership", "Communication", "CI/CD",
	"REST API", "GraphQL", "Redis", "Linux", "Excel", "Tableau", "Marketing", "Sales",
}

// SkillVariants returns normalized spellings under which a skill is recognized.
func SkillVariants(skill string) []string {
	base := NormalizeText(skill)
	if base == "" {
		return []string{}
	}
	out := []string{base}
	seen := map[string]struct{}{base: {}}
	for _, a := range aliases[base] {
		if _, ok := seen[a]; !ok {
			seen[a] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}

// HasSkill reports whether normalized text mentions skill under any variant.
func HasSkill(normalizedText, skill string) bool {
	for _, v := range SkillVariants(skill) {
		if ContainsPhrase(normalizedText, v) {
			return true
		}
	}
	return false
}

// SameSkill compares two skill names modulo aliases.
func SameSkill(a, b string) bool {
	nb := NormalizeText(b)
	for _, v := range SkillVariants(a) {
		if v == nb {
			return true
		}
	}
	return false
}

// ExtractSkills returns the vocabulary entries mentioned in text, in vocabulary order.
func ExtractSkills(text string, vocabulary []string) []string {
	norm := NormalizeText(text)
	out := []string{}
	for _, s := range vocabulary {
		if HasSkill(norm, s) {
			out = append(out, s)
		}
	}
	return out
}

// Partition splits required skills into those the candidate has and those missing.
func Partition(required, have []string) (matched, missing []string) {
	matched, missing = []string{}, []string{}
	for _, r := range required {
		if strings.TrimSpace(r) == "" {
			continue
		}
		found := false
		for _, h := range have {
			if SameSkill(r, h) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, r)
		} else {
			missing = append(missing, r)
		}
	}
	return matched, missing
}
