package in

import "folio/internal/modules/analytics/dto"

// Usecase tracking calls never block and never report errors to the caller.
type Usecase interface {
	Track(input dto.EventInput)
	TrackPageView(path string)
	TrackFormSubmission(form string)
	TrackProjectView(project string)
	TrackDownload(file string)
	Stats() dto.StatsOutput
}
