package in

import (
	"context"

	"folio/internal/modules/ambient/dto"
	ambientin "folio/internal/modules/ambient/port/in"
)

type CLIHandler struct {
	usecase ambientin.Usecase
}

func NewCLIHandler(usecase ambientin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Snapshot(ctx context.Context, width, height, frames, cores int, seed uint64, path string) (dto.SnapshotOutput, error) {
	return h.usecase.Snapshot(ctx, dto.SnapshotInput{Width: width, Height: height, Frames: frames, Cores: cores, Seed: seed, Path: path})
}

func (h CLIHandler) Budget(width, height, cores int, reducedMotion bool) dto.BudgetOutput {
	return h.usecase.Budget(dto.BudgetInput{Width: width, Height: height, Cores: cores, ReducedMotion: reducedMotion})
}
