package dto

type ProjectOutput struct {
	Key          string
	Category     string
	Technologies []string
	GitHub       string
	Demo         string
	Featured     bool
}

type ProjectsOutput struct {
	Category string
	Projects []ProjectOutput
}
