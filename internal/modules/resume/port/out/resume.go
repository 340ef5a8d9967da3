package out

import (
	"context"

	"folio/internal/modules/resume/domain"
)

type PDFReader interface {
	ReadPage(ctx context.Context, path string, page int) (domain.Page, error)
}

type Launcher interface {
	Open(ctx context.Context, target string) error
}

type Tracker interface {
	TrackDownload(file string)
}
