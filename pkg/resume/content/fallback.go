package content

import (
	"fmt"
	"strings"
)

// Fallback is the static document served when no AI provider produced one.
func Fallback(targetRole, linkedinURL string) Document {
	role := strings.TrimSpace(targetRole)
	summary := "Experienced professional with a strong background in delivering results, collaborating across teams and continuously developing new skills."
	if role != "" {
		summary = fmt.Sprintf("Experienced professional seeking a %s role, with a strong background in delivering results, collaborating across teams and continuously developing new skills.", role)
	}
	title := "Professional"
	if role != "" {
		title = role
	}
	return Document{
		FormatVersion: CurrentVersion,
		PersonalInfo: PersonalInfo{
			Name:        "Professional User",
			Email:       "user@example.com",
			Phone:       "+1-555-0123",
			Location:    "San Francisco, CA",
			LinkedinURL: linkedinURL,
		},
		Summary: summary,
		Experience: []Experience{{
			Title:    title,
			Company:  "Previous Company",
			Duration: "2020 - Present",
			Achievements: []string{
				"Led cross-functional initiatives from planning to delivery",
				"Improved team processes and delivery predictability",
				"Mentored colleagues and shared domain knowledge",
			},
		}},
		Skills: []string{"Leadership", "Communication", "Technical Skills"},
		Education: []Education{{
			Degree:      "Bachelor's Degree",
			Institution: "University",
			Year:        "2018",
		}},
	}
}
