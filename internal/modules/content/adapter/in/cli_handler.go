package in

import (
	"folio/internal/modules/content/dto"
	contentin "folio/internal/modules/content/port/in"
)

type CLIHandler struct {
	usecase contentin.Usecase
}

func NewCLIHandler(usecase contentin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Projects(category string) (dto.ProjectsOutput, error) {
	return h.usecase.Projects(category)
}
