package domain

import (
	"fmt"
	"strings"

	"folio/internal/platform/slug"
)

type Category string

const (
	CategoryAll     Category = "all"
	CategoryWeb     Category = "web"
	CategoryData    Category = "data"
	CategoryMobile  Category = "mobile"
	CategoryBackend Category = "backend"
	CategoryDesktop Category = "desktop"
	CategoryNetwork Category = "network"
)

// Categories is the filter order shown in the projects section.
var Categories = []Category{
	CategoryAll, CategoryWeb, CategoryData, CategoryMobile,
	CategoryBackend, CategoryDesktop, CategoryNetwork,
}

var englishLabels = map[Category]string{
	CategoryAll:     "All",
	CategoryWeb:     "Web Development",
	CategoryData:    "Data Analysis",
	CategoryMobile:  "Mobile Development",
	CategoryBackend: "Backend",
	CategoryDesktop: "Desktop Development",
	CategoryNetwork: "Network Analysis",
}

func (c Category) Validate() error {
	if _, ok := englishLabels[c]; !ok {
		return fmt.Errorf("unsupported category %q", string(c))
	}
	return nil
}

// LabelKey is the translation key of the category label.
func (c Category) LabelKey() string { return "projects.categories." + string(c) }

// ParseCategory accepts a category key or its English label in any casing.
func ParseCategory(input string) (Category, error) {
	s := slug.Make(input)
	if s == "" {
		return CategoryAll, nil
	}
	for _, c := range Categories {
		if s == string(c) || s == slug.Make(englishLabels[c]) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported category %q", input)
}

// Cycle moves delta positions through Categories, wrapping at both ends.
func (c Category) Cycle(delta int) Category {
	idx := 0
	for i, cat := range Categories {
		if cat == c {
			idx = i
			break
		}
	}
	n := len(Categories)
	return Categories[((idx+delta)%n+n)%n]
}

type Project struct {
	Key          string   `yaml:"key"`
	Technologies []string `yaml:"technologies"`
	Category     Category `yaml:"category"`
	GitHub       string   `yaml:"github"`
	Demo         string   `yaml:"demo"`
	Featured     bool     `yaml:"featured"`
}

func (p Project) TitleKey() string       { return "projects." + p.Key + ".title" }
func (p Project) DescriptionKey() string { return "projects." + p.Key + ".description" }

func (p Project) Validate() error {
	if strings.TrimSpace(p.Key) == "" {
		return fmt.Errorf("project key is required")
	}
	if p.Category == CategoryAll {
		return fmt.Errorf("project %s: category all is a filter, not a category", p.Key)
	}
	if err := p.Category.Validate(); err != nil {
		return fmt.Errorf("project %s: %w", p.Key, err)
	}
	return nil
}

// Filter returns the projects of the given category in their original order.
// CategoryAll returns every project.
func Filter(projects []Project, category Category) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if category == CategoryAll || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

type Skill struct {
	Group string `yaml:"group"`
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	Color string `yaml:"color"`
}

func (s Skill) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("skill name is required")
	}
	if s.Level < 0 || s.Level > 100 {
		return fmt.Errorf("skill %s: level %d outside 0..100", s.Name, s.Level)
	}
	return nil
}

type SkillGroup struct {
	Key    string
	Skills []Skill
}

// LabelKey is the translation key of the group heading.
func (g SkillGroup) LabelKey() string { return "skills." + g.Key }

// GroupSkills groups skills by Group keeping first-seen order.
func GroupSkills(skills []Skill) []SkillGroup {
	var groups []SkillGroup
	index := map[string]int{}
	for _, s := range skills {
		i, ok := index[s.Group]
		if !ok {
			i = len(groups)
			index[s.Group] = i
			groups = append(groups, SkillGroup{Key: s.Group})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

type Social struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Portfolio struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	// Interests are keys under about.interests in the catalogs.
	Interests []string  `yaml:"interests"`
	Skills    []Skill   `yaml:"skills"`
	Projects  []Project `yaml:"projects"`
	Socials   []Social  `yaml:"socials"`
	// About is the markdown body following the frontmatter.
	About string `yaml:"-"`
}

func (p Portfolio) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("portfolio name is required")
	}
	seen := map[string]bool{}
	for _, pr := range p.Projects {
		if err := pr.Validate(); err != nil {
			return err
		}
		if seen[pr.Key] {
			return fmt.Errorf("duplicate project key %s", pr.Key)
		}
		seen[pr.Key] = true
	}
	for _, s := range p.Skills {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
