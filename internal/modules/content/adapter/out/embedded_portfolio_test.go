package out

import (
	"testing"

	"folio/internal/modules/content/domain"
)

func TestEmbeddedPortfolioLoads(t *testing.T) {
	t.Parallel()
	p, err := NewEmbeddedPortfolio().Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("embedded portfolio invalid: %v", err)
	}
	if len(p.Projects) != 6 || len(p.Skills) != 9 || len(p.Socials) != 3 {
		t.Fatalf("unexpected counts: %d projects, %d skills, %d socials", len(p.Projects), len(p.Skills), len(p.Socials))
	}
	if web := domain.Filter(p.Projects, domain.CategoryWeb); len(web) != 3 {
		t.Fatalf("expected 3 web projects, got %d", len(web))
	}
	if p.Projects[1].GitHub != "" || !p.Projects[1].Featured {
		t.Fatalf("project2 has no repository and is featured: %+v", p.Projects[1])
	}
	if p.About == "" {
		t.Fatalf("about body missing")
	}
}

func TestDocumentSourceRejectsBadFrontmatter(t *testing.T) {
	t.Parallel()
	if _, err := NewDocumentSource("---\nname: [\n---\n").Load(); err == nil {
		t.Fatalf("malformed yaml must fail")
	}
}
