package usecase

import (
	localein "folio/internal/modules/locale/port/in"
	"folio/internal/modules/locale/service"
)

type Interactor struct {
	tr *service.Translator
}

func NewInteractor(tr *service.Translator) localein.Usecase {
	return &Interactor{tr: tr}
}

func (i *Interactor) T(key string) string { return i.tr.T(key) }

func (i *Interactor) Language() string { return i.tr.Language() }

func (i *Interactor) SetLanguage(lang string) error { return i.tr.SetLanguage(lang) }

func (i *Interactor) Toggle() string { return i.tr.Toggle() }

func (i *Interactor) Languages() []string { return i.tr.Languages() }
