package in

import (
	"context"

	"folio/internal/modules/capability/dto"
)

type Usecase interface {
	Describe(ctx context.Context) (dto.DescribeOutput, error)
}
