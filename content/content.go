// Package content holds the reference data shown on the portfolio page.
package content

import "strings"

// Link is an outbound link on a project card.
type Link struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

// Intro is the hero block plus the contact details reused across the page.
type Intro struct {
	Name      string `yaml:"name" json:"name"`
	Tagline   string `yaml:"tagline" json:"tagline"`
	Summary   string `yaml:"summary" json:"summary"`
	Email     string `yaml:"email" json:"email"`
	Phone     string `yaml:"phone" json:"phone"`
	GitHub    string `yaml:"github" json:"github"`
	LinkedIn  string `yaml:"linkedin" json:"linkedin"`
	ResumeURL string `yaml:"resume_url" json:"resume_url"`
	ImageURL  string `yaml:"image_url" json:"image_url"`
	Location  string `yaml:"location" json:"location"`
}

// MailTo returns the mailto: link for the intro's email.
func (i Intro) MailTo() string {
	if i.Email == "" {
		return ""
	}
	return "mailto:" + i.Email
}

// Initials returns up to two leading letters of the name's first word, upper-cased.
// The header badge shows them.
func (i Intro) Initials() string {
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return ""
	}
	r := []rune(strings.Fields(name)[0])
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

type SkillGroup struct {
	Title string   `yaml:"title" json:"title"`
	Items []string `yaml:"items" json:"items"`
}

type Project struct {
	Name        string   `yaml:"name" json:"name"`
	Stack       []string `yaml:"stack" json:"stack"`
	Description string   `yaml:"description" json:"description"`
	Links       []Link   `yaml:"links" json:"links,omitempty"`
}

type Job struct {
	Role     string   `yaml:"role" json:"role"`
	Company  string   `yaml:"company" json:"company"`
	Location string   `yaml:"location" json:"location"`
	Period   string   `yaml:"period" json:"period"`
	Bullets  []string `yaml:"bullets" json:"bullets"`
}

type Education struct {
	School string `yaml:"school" json:"school"`
	Degree string `yaml:"degree" json:"degree"`
	Period string `yaml:"period" json:"period"`
	Meta   string `yaml:"meta" json:"meta"`
}

// Profile is everything the page renders. About is Markdown.
type Profile struct {
	Intro      Intro        `yaml:"intro" json:"intro"`
	About      string       `yaml:"-" json:"about"`
	Skills     []SkillGroup `yaml:"skills" json:"skills"`
	Projects   []Project    `yaml:"projects" json:"projects"`
	Experience []Job        `yaml:"experience" json:"experience"`
	Education  []Education  `yaml:"education" json:"education"`
}

// Clone returns a deep copy so callers can tweak a profile without touching
// the one they were handed.
func (p Profile) Clone() Profile {
	out := p
	out.Skills = make([]SkillGroup, len(p.Skills))
	for i, g := range p.Skills {
		g.Items = append([]string(nil), g.Items...)
		out.Skills[i] = g
	}
	out.Projects = make([]Project, len(p.Projects))
	for i, pr := range p.Projects {
		pr.Stack = append([]string(nil), pr.Stack...)
		pr.Links = append([]Link(nil), pr.Links...)
		out.Projects[i] = pr
	}
	out.Experience = make([]Job, len(p.Experience))
	for i, j := range p.Experience {
		j.Bullets = append([]string(nil), j.Bullets...)
		out.Experience[i] = j
	}
	out.Education = append([]Education(nil), p.Education...)
	return out
}
