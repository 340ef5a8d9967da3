package out

import (
	_ "embed"
	"fmt"

	"folio/internal/modules/content/domain"
	"folio/internal/platform/markdown"
)

//go:embed portfolio.md
var portfolioDocument string

// DocumentSource decodes a portfolio document: YAML frontmatter with the
// structured data followed by the markdown about body.
type DocumentSource struct {
	document string
}

func NewEmbeddedPortfolio() DocumentSource {
	return DocumentSource{document: portfolioDocument}
}

func NewDocumentSource(document string) DocumentSource {
	return DocumentSource{document: document}
}

func (s DocumentSource) Load() (domain.Portfolio, error) {
	var p domain.Portfolio
	body, err := markdown.DecodeFrontmatter(s.document, &p)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("decode portfolio: %w", err)
	}
	p.About = body
	return p, nil
}
