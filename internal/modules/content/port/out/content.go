package out

import "folio/internal/modules/content/domain"

type Source interface {
	Load() (domain.Portfolio, error)
}
