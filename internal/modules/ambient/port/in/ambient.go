package in

import (
	"context"

	"folio/internal/modules/ambient/dto"
)

type Usecase interface {
	Budget(input dto.BudgetInput) dto.BudgetOutput
	Snapshot(ctx context.Context, input dto.SnapshotInput) (dto.SnapshotOutput, error)
}
