package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"folio/internal/modules/contact/domain"
	contactout "folio/internal/modules/contact/port/out"
	apperrors "folio/internal/platform/errors"
)

type ContactService struct {
	mailer    contactout.Mailer
	tracker   contactout.Tracker
	service   domain.ServiceParams
	recipient string
	log       *zap.Logger
}

func NewContactService(mailer contactout.Mailer, tracker contactout.Tracker, service domain.ServiceParams, recipient string, log *zap.Logger) *ContactService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContactService{mailer: mailer, tracker: tracker, service: service, recipient: recipient, log: log}
}

// Submit sends the form once. There is no retry; the caller shows the
// resulting status.
func (s *ContactService) Submit(ctx context.Context, form domain.Form) (domain.Status, error) {
	if err := form.Validate(); err != nil {
		return domain.StatusError, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if s.service.ServiceID == "" || s.service.TemplateID == "" || s.service.PublicKey == "" {
		return domain.StatusError, fmt.Errorf("%w: emailjs service, template and public key", apperrors.ErrNotConfigured)
	}
	params := domain.NewTemplateParams(form, s.recipient)
	if err := s.mailer.Send(ctx, s.service, params); err != nil {
		s.log.Warn("contact form delivery failed", zap.Error(err))
		if !errors.Is(err, apperrors.ErrDeliveryFailed) {
			err = fmt.Errorf("%w: %v", apperrors.ErrDeliveryFailed, err)
		}
		return domain.StatusError, err
	}
	if s.tracker != nil {
		s.tracker.TrackFormSubmission(domain.FormName)
	}
	s.log.Info("contact form sent", zap.String("from", params.FromEmail))
	return domain.StatusSuccess, nil
}
