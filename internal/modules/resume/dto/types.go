package dto

type TextOutput struct {
	Page      int
	TotalPage int
	Text      string
}

type OpenOutput struct {
	Path string
}
