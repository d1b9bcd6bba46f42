// Package seed holds the reference dataset loaded into an empty database.
package seed

import (
	"github.com/artem13815/career/pkg/auth"
	"github.com/artem13815/career/pkg/jobs"
	"github.com/artem13815/career/pkg/skills"
)

// Job is a seeded job, linked to its company by name.
type Job struct {
	Company string
	jobs.Job
}

// UserSkill links the seeded user to a catalog skill by name.
type UserSkill struct {
	Skill    string
	Level    skills.Level
	Verified bool
}

// Application links the seeded user to a seeded job by company and title.
type Application struct {
	Company  string
	JobTitle string
	Status   jobs.Status
	Notes    string
}

// Dataset is inserted as a whole or not at all.
type Dataset struct {
	User          auth.User
	Companies     []jobs.Company
	Jobs          []Job
	Skills        []skills.Skill
	UserSkills    []UserSkill
	LearningPaths []skills.LearningPath
	Badges        []skills.Badge
	Applications  []Application
}

const DemoEmail = "chenkai.xie@example.com"

func intp(v int) *int { return &v }

// Default returns the demo dataset.
func Default() Dataset {
	return Dataset{
		User: auth.User{
			Email:           DemoEmail,
			FirstName:       "Chenkai",
			LastName:        "Xie",
			ProfileImageURL: "https://images.unsplash.com/photo-1494790108755-2616b612b787?auto=format&fit=crop&w=150&h=150",
			LinkedinURL:     "https://linkedin.com/in/chenkai-xie",
			Location:        "San Francisco, CA",
			Title:           "Senior Frontend Developer",
		},
		Companies: []jobs.Company{
			{Name: "Google", Industry: "Technology", Location: "Mountain View, CA", Size: "10000+", Website: "https://google.com", Description: "Search and advertising technology company"},
			{Name: "Microsoft", Industry: "Technology", Location: "Redmond, WA", Size: "10000+", Website: "https://microsoft.com", Description: "Software and cloud computing company"},
			{Name: "Apple", Industry: "Technology", Location: "Cupertino, CA", Size: "10000+", Website: "https://apple.com", Description: "Consumer electronics and software company"},
			{Name: "Stripe", Industry: "Fintech", Location: "San Francisco, CA", Size: "1000-5000", Website: "https://stripe.com", Description: "Payment processing platform"},
			{Name: "Notion", Industry: "Productivity", Location: "San Francisco, CA", Size: "100-500", Website: "https://notion.so", Description: "Productivity and collaboration software"},
			{Name: "Figma", Industry: "Design", Location: "San Francisco, CA", Size: "500-1000", Website: "https://figma.com", Description: "Design and prototyping platform"},
		},
		Jobs: []Job{
			{Company: "Google", Job: jobs.Job{
				Title:        "Senior Frontend Developer",
				Description:  "We're looking for an experienced frontend developer to join our team working on user-facing products that serve billions of users.",
				Requirements: "5+ years of experience with React, TypeScript, and modern frontend technologies. Experience with large-scale applications and performance optimization.",
				SalaryMin:    intp(130000), SalaryMax: intp(180000),
				Location: "Mountain View, CA", Type: jobs.FullTime, WorkMode: jobs.Hybrid,
				Skills: []string{"React", "TypeScript", "JavaScript", "CSS", "Node.js"},
			}},
			{Company: "Microsoft", Job: jobs.Job{
				Title:        "Senior Software Engineer",
				Description:  "Join our team building next-generation cloud services and developer tools.",
				Requirements: "Strong background in software engineering with experience in C#, .NET, and cloud technologies.",
				SalaryMin:    intp(125000), SalaryMax: intp(175000),
				Location: "Redmond, WA", Type: jobs.FullTime, WorkMode: jobs.Hybrid,
				Skills: []string{"C#", ".NET", "Azure", "TypeScript", "React"},
			}},
			{Company: "Apple", Job: jobs.Job{
				Title:        "Product Manager",
				Description:  "Lead product strategy and development for consumer-facing applications.",
				Requirements: "MBA or equivalent experience, 5+ years in product management, experience with consumer products.",
				SalaryMin:    intp(140000), SalaryMax: intp(190000),
				Location: "Cupertino, CA", Type: jobs.FullTime, WorkMode: jobs.OnSite,
				Skills: []string{"Product Strategy", "Analytics", "Leadership", "User Research"},
			}},
			{Company: "Figma", Job: jobs.Job{
				Title:        "UX Designer",
				Description:  "Design intuitive and beautiful user experiences for our design platform.",
				Requirements: "3+ years of UX/UI design experience, proficiency in Figma, strong portfolio.",
				SalaryMin:    intp(120000), SalaryMax: intp(160000),
				Location: "San Francisco, CA", Type: jobs.FullTime, WorkMode: jobs.Remote,
				Skills: []string{"Figma", "Prototyping", "User Research", "Design Systems"},
			}},
		},
		Skills: []skills.Skill{
			{Name: "React", Category: "Frontend", Description: "JavaScript library for building user interfaces"},
			{Name: "TypeScript", Category: "Language", Description: "Typed superset of JavaScript"},
			{Name: "JavaScript", Category: "Language", Description: "Programming language for web development"},
			{Name: "Node.js", Category: "Backend", Description: "JavaScript runtime for server-side development"},
			{Name: "Python", Category: "Language", Description: "High-level programming language"},
			{Name: "SQL", Category: "Database", Description: "Query language for relational databases"},
			{Name: "AWS", Category: "Cloud", Description: "Amazon Web Services cloud platform"},
			{Name: "Docker", Category: "DevOps", Description: "Containerization platform"},
			{Name: "Figma", Category: "Design", Description: "Design and prototyping tool"},
			{Name: "Product Strategy", Category: "Management", Description: "Strategic product planning and execution"},
		},
		UserSkills: []UserSkill{
			{Skill: "React", Level: skills.Expert, Verified: true},
			{Skill: "TypeScript", Level: skills.Advanced, Verified: true},
			{Skill: "JavaScript", Level: skills.Expert, Verified: true},
			{Skill: "Node.js", Level: skills.Intermediate},
			{Skill: "SQL", Level: skills.Intermediate, Verified: true},
		},
		LearningPaths: []skills.LearningPath{
			{Title: "Advanced React Development", Description: "Master advanced React patterns and performance optimization", Category: "Frontend", TotalModules: 12, CompletedModules: 9, EstimatedHours: 3, IsActive: true},
			{Title: "System Design Fundamentals", Description: "Learn to design scalable distributed systems", Category: "Backend", TotalModules: 11, CompletedModules: 5, EstimatedHours: 8, IsActive: true},
		},
		Badges: []skills.Badge{
			{Name: "React Expert", Description: "Mastered React framework", Icon: "fab fa-react", Category: "Frontend"},
			{Name: "JS Advanced", Description: "Advanced JavaScript skills", Icon: "fab fa-js-square", Category: "Language"},
			{Name: "Node.js Pro", Description: "Backend development with Node.js", Icon: "fab fa-node-js", Category: "Backend"},
			{Name: "SQL Master", Description: "Database query optimization", Icon: "fas fa-database", Category: "Database"},
			{Name: "AWS Basics", Description: "Cloud infrastructure basics", Icon: "fab fa-aws", Category: "Cloud"},
			{Name: "Analytics", Description: "Data analysis and insights", Icon: "fas fa-chart-line", Category: "Data"},
		},
		Applications: []Application{
			{Company: "Google", JobTitle: "Senior Frontend Developer", Status: jobs.StatusInterview, Notes: "Technical interview scheduled for next week"},
			{Company: "Apple", JobTitle: "Product Manager", Status: jobs.StatusInReview, Notes: "Application under review by hiring manager"},
			{Company: "Figma", JobTitle: "UX Designer", Status: jobs.StatusApplied, Notes: "Portfolio submitted with application"},
		},
	}
}
