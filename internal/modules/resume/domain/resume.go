package domain

// DownloadLabel is the analytics label of a CV open.
const DownloadLabel = "cv"

type Page struct {
	Number int
	Total  int
	Text   string
}

// ClampPage keeps page inside 1..total. A document without pages yields 1.
func ClampPage(page, total int) int {
	if page < 1 {
		page = 1
	}
	if total > 0 && page > total {
		page = total
	}
	return page
}
