package dto

type SubmitInput struct {
	Name    string
	Email   string
	Message string
}

type SubmitOutput struct {
	Status string
}
