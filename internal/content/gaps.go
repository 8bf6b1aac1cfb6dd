package content

import "fmt"

// Gaps lists the fields left empty in the document, as dotted paths such as
// "projects[1].link". An incomplete entry still renders; only the missing
// field is left out.
func (s *Store) Gaps() []string {
	var gaps []string
	missing := func(v, field string) {
		if v == "" {
			gaps = append(gaps, field)
		}
	}

	p := s.Personal
	missing(p.Name, "personal.name")
	if len(p.Titles) == 0 {
		gaps = append(gaps, "personal.titles")
	}
	missing(p.Tagline, "personal.tagline")
	missing(p.About.Summary, "personal.about.summary")
	missing(p.Contact.Email, "personal.contact.email")

	for i, g := range s.Skills {
		missing(g.Category, fmt.Sprintf("skills[%d].category", i))
	}
	for i, pr := range s.Projects {
		missing(pr.Title, fmt.Sprintf("projects[%d].title", i))
		missing(pr.Link, fmt.Sprintf("projects[%d].link", i))
	}
	for i, a := range s.AutomationAgents {
		missing(a.Title, fmt.Sprintf("automation_agents[%d].title", i))
		missing(a.Link, fmt.Sprintf("automation_agents[%d].link", i))
	}
	for i, e := range s.Experience {
		missing(e.Title, fmt.Sprintf("experience[%d].title", i))
		missing(e.Company, fmt.Sprintf("experience[%d].company", i))
		missing(e.Period, fmt.Sprintf("experience[%d].period", i))
	}
	missing(s.Education.Degree, "education.degree")
	return gaps
}
