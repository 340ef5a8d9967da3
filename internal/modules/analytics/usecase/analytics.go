package usecase

import (
	"folio/internal/modules/analytics/domain"
	"folio/internal/modules/analytics/dto"
	analyticsin "folio/internal/modules/analytics/port/in"
	"folio/internal/modules/analytics/service"
)

type Interactor struct {
	tracker *service.Tracker
}

func NewInteractor(tracker *service.Tracker) analyticsin.Usecase {
	return &Interactor{tracker: tracker}
}

func (i *Interactor) Track(input dto.EventInput) {
	i.tracker.Track(domain.Event{Name: input.Name, Category: input.Category, Label: input.Label, Value: input.Value})
}

func (i *Interactor) TrackPageView(path string) { i.tracker.Track(domain.PageView(path)) }

func (i *Interactor) TrackFormSubmission(form string) { i.tracker.Track(domain.FormSubmission(form)) }

func (i *Interactor) TrackProjectView(project string) { i.tracker.Track(domain.ProjectView(project)) }

func (i *Interactor) TrackDownload(file string) { i.tracker.Track(domain.Download(file)) }

func (i *Interactor) Stats() dto.StatsOutput {
	s := i.tracker.Stats()
	return dto.StatsOutput{Sent: s.Sent, Dropped: s.Dropped, Failed: s.Failed}
}
