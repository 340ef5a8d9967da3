package out

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"folio/internal/modules/locale/domain"
	apperrors "folio/internal/platform/errors"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

// EmbeddedCatalogs serves the translation tables compiled into the binary.
type EmbeddedCatalogs struct{}

func NewEmbeddedCatalogs() EmbeddedCatalogs { return EmbeddedCatalogs{} }

func (EmbeddedCatalogs) Languages() []string {
	entries, err := catalogFS.ReadDir("catalogs")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(langs)
	return langs
}

func (EmbeddedCatalogs) Load(lang string) (domain.Catalog, error) {
	raw, err := catalogFS.ReadFile(path.Join("catalogs", lang+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: catalog %q", apperrors.ErrNotFound, lang)
	}
	tree := map[string]any{}
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("decode catalog %q: %w", lang, err)
	}
	return domain.Flatten(tree), nil
}
