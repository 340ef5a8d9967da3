package in

type Usecase interface {
	T(key string) string
	Language() string
	SetLanguage(lang string) error
	Toggle() string
	Languages() []string
}
