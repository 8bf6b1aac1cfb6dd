// Package content holds the portfolio's Content Store: the structured,
// read-only document every surface renders from.
package content

// PersonalInfo describes the portfolio owner.
type PersonalInfo struct {
	Name               string   `yaml:"name"`
	Titles             []string `yaml:"titles"`
	Tagline            string   `yaml:"tagline"`
	TaglineDescription string   `yaml:"tagline_description"`
	Location           string   `yaml:"location"`
	About              About    `yaml:"about"`
	Resume             string   `yaml:"resume"`
	Contact            Contact  `yaml:"contact"`
	Social             Social   `yaml:"social"`
}

// About is the summary paragraph plus its highlight bullets.
type About struct {
	Summary    string   `yaml:"summary"`
	Highlights []string `yaml:"highlights"`
	Image      string   `yaml:"image"`
}

// Contact holds direct contact details.
type Contact struct {
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Location string `yaml:"location"`
}

// Social holds profile links.
type Social struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
}

// SkillGroup is a category of skills.
type SkillGroup struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

// Project is a showcased project. Image is optional.
type Project struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
	Featured    bool   `yaml:"featured"`
	Image       string `yaml:"image"`
}

// AutomationAgent is a showcased automation workflow.
type AutomationAgent struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
}

// ExperienceEntry is one job. Entries render in document order.
type ExperienceEntry struct {
	Title            string   `yaml:"title"`
	Company          string   `yaml:"company"`
	Location         string   `yaml:"location"`
	Period           string   `yaml:"period"`
	Tools            string   `yaml:"tools"`
	Responsibilities []string `yaml:"responsibilities"`
}

// Education is the single education record.
type Education struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Period      string `yaml:"period"`
}

// Store is the whole document. It is never mutated after loading; callers
// share one *Store and must treat it as read-only.
type Store struct {
	Personal         PersonalInfo      `yaml:"personal"`
	Skills           []SkillGroup      `yaml:"skills"`
	Projects         []Project         `yaml:"projects"`
	AutomationAgents []AutomationAgent `yaml:"automation_agents"`
	Experience       []ExperienceEntry `yaml:"experience"`
	Education        Education         `yaml:"education"`
	Certifications   []string          `yaml:"certifications"`

	// Source is where the document was loaded from, "" for the built-in one.
	Source string `yaml:"-"`
}
