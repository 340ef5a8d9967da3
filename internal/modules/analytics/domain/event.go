package domain

import (
	"fmt"
	"strings"
)

const (
	CategoryEngagement = "engagement"
	CategoryProjects   = "projects"
	CategoryNavigation = "navigation"
)

// Event is one tracked interaction. Value is optional.
type Event struct {
	Name     string
	Category string
	Label    string
	Value    *int64
	Path     string
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("event name is required")
	}
	return nil
}

func PageView(path string) Event {
	return Event{Name: "page_view", Category: CategoryNavigation, Path: path}
}

func FormSubmission(form string) Event {
	return Event{Name: "form_submit", Category: CategoryEngagement, Label: form}
}

func ProjectView(project string) Event {
	return Event{Name: "project_view", Category: CategoryProjects, Label: project}
}

func Download(file string) Event {
	return Event{Name: "download", Category: CategoryEngagement, Label: file}
}
