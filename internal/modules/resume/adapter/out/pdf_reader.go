package out

import (
	"context"
	"fmt"
	"strings"

	"rsc.io/pdf"

	"folio/internal/modules/resume/domain"
	resumeout "folio/internal/modules/resume/port/out"
)

type LocalPDFReader struct{}

func NewLocalPDFReader() resumeout.PDFReader {
	return &LocalPDFReader{}
}

// ReadPage extracts the text runs of one page, one output line per baseline.
func (r *LocalPDFReader) ReadPage(_ context.Context, path string, page int) (domain.Page, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return domain.Page{}, fmt.Errorf("open pdf: %w", err)
	}
	total := doc.NumPage()
	if total == 0 {
		return domain.Page{Number: 1}, nil
	}
	page = domain.ClampPage(page, total)
	p := doc.Page(page)
	if p.V.IsNull() {
		return domain.Page{}, fmt.Errorf("pdf page %d is null", page)
	}
	return domain.Page{Number: page, Total: total, Text: joinLines(p.Content().Text)}, nil
}

func joinLines(texts []pdf.Text) string {
	var b strings.Builder
	lastY := 0.0
	for i, t := range texts {
		if t.S == "" {
			continue
		}
		if i > 0 && t.Y != lastY {
			b.WriteByte('\n')
		}
		b.WriteString(t.S)
		lastY = t.Y
	}
	lines := strings.Split(b.String(), "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
