package out

import "folio/internal/modules/locale/domain"

type CatalogSource interface {
	Languages() []string
	Load(lang string) (domain.Catalog, error)
}
