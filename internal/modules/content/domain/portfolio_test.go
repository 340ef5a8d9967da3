package domain_test

import (
	"testing"

	"folio/internal/modules/content/domain"
)

var projects = []domain.Project{
	{Key: "project1", Category: domain.CategoryWeb},
	{Key: "project2", Category: domain.CategoryMobile},
	{Key: "project4", Category: domain.CategoryWeb},
	{Key: "project5", Category: domain.CategoryNetwork},
}

func TestFilter(t *testing.T) {
	t.Parallel()
	if got := domain.Filter(projects, domain.CategoryAll); len(got) != 4 {
		t.Fatalf("all must return every project, got %d", len(got))
	}
	web := domain.Filter(projects, domain.CategoryWeb)
	if len(web) != 2 || web[0].Key != "project1" || web[1].Key != "project4" {
		t.Fatalf("unexpected web projects %+v", web)
	}
	if got := domain.Filter(projects, domain.CategoryData); len(got) != 0 {
		t.Fatalf("data has no projects, got %d", len(got))
	}
}

func TestParseCategoryAndCycle(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]domain.Category{
		"":                "all",
		"web":             domain.CategoryWeb,
		"Web Development": domain.CategoryWeb,
		"NETWORK":         domain.CategoryNetwork,
	} {
		got, err := domain.ParseCategory(in)
		if err != nil || got != want {
			t.Fatalf("ParseCategory(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := domain.ParseCategory("games"); err == nil {
		t.Fatalf("unknown category must fail")
	}
	if domain.CategoryAll.Cycle(-1) != domain.CategoryNetwork || domain.CategoryNetwork.Cycle(1) != domain.CategoryAll {
		t.Fatalf("cycle must wrap")
	}
	if domain.CategoryWeb.LabelKey() != "projects.categories.web" {
		t.Fatalf("unexpected label key")
	}
}

func TestGroupSkillsKeepsOrder(t *testing.T) {
	t.Parallel()
	groups := domain.GroupSkills([]domain.Skill{
		{Group: "frontend", Name: "HTML5"},
		{Group: "backend", Name: "Node.js"},
		{Group: "frontend", Name: "CSS3"},
	})
	if len(groups) != 2 || groups[0].Key != "frontend" || len(groups[0].Skills) != 2 || groups[1].LabelKey() != "skills.backend" {
		t.Fatalf("unexpected groups %+v", groups)
	}
}

func TestPortfolioValidate(t *testing.T) {
	t.Parallel()
	p := domain.Portfolio{Name: "x", Projects: projects}
	if err := p.Validate(); err != nil {
		t.Fatalf("valid portfolio: %v", err)
	}
	p.Projects = append(p.Projects, domain.Project{Key: "project1", Category: domain.CategoryWeb})
	if err := p.Validate(); err == nil {
		t.Fatalf("duplicate key must fail")
	}
	p = domain.Portfolio{Name: "x", Skills: []domain.Skill{{Name: "Go", Level: 120}}}
	if err := p.Validate(); err == nil {
		t.Fatalf("level above 100 must fail")
	}
	p = domain.Portfolio{Name: "x", Projects: []domain.Project{{Key: "p", Category: domain.CategoryAll}}}
	if err := p.Validate(); err == nil {
		t.Fatalf("all is not a project category")
	}
}
