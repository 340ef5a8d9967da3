package service_test

import (
	"context"
	"errors"
	"testing"

	"folio/internal/modules/contact/domain"
	"folio/internal/modules/contact/service"
	apperrors "folio/internal/platform/errors"
)

type fakeMailer struct {
	calls  int
	params domain.TemplateParams
	err    error
}

func (m *fakeMailer) Send(_ context.Context, _ domain.ServiceParams, p domain.TemplateParams) error {
	m.calls++
	m.params = p
	return m.err
}

type fakeTracker struct{ forms []string }

func (t *fakeTracker) TrackFormSubmission(form string) { t.forms = append(t.forms, form) }

var configured = domain.ServiceParams{ServiceID: "svc", TemplateID: "tpl", PublicKey: "key"}

func TestSubmitSuccess(t *testing.T) {
	t.Parallel()
	mailer := &fakeMailer{}
	tracker := &fakeTracker{}
	svc := service.NewContactService(mailer, tracker, configured, "Alejandro Seclen", nil)

	status, err := svc.Submit(context.Background(), domain.Form{Name: "Ana", Email: "ana@example.com", Message: "Hola"})
	if err != nil || status != domain.StatusSuccess {
		t.Fatalf("submit: %s %v", status, err)
	}
	if mailer.calls != 1 || mailer.params.ToName != "Alejandro Seclen" || mailer.params.ReplyTo != "ana@example.com" {
		t.Fatalf("unexpected mailer call %+v", mailer)
	}
	if len(tracker.forms) != 1 || tracker.forms[0] != "contact" {
		t.Fatalf("form submission not tracked: %v", tracker.forms)
	}
}

func TestSubmitFailures(t *testing.T) {
	t.Parallel()
	valid := domain.Form{Name: "Ana", Email: "ana@example.com", Message: "Hola"}

	mailer := &fakeMailer{err: errors.New("boom")}
	tracker := &fakeTracker{}
	status, err := service.NewContactService(mailer, tracker, configured, "A", nil).Submit(context.Background(), valid)
	if status != domain.StatusError || !errors.Is(err, apperrors.ErrDeliveryFailed) {
		t.Fatalf("expected delivery failure, got %s %v", status, err)
	}
	if mailer.calls != 1 || len(tracker.forms) != 0 {
		t.Fatalf("failed send must not retry or track: calls=%d tracked=%v", mailer.calls, tracker.forms)
	}

	mailer = &fakeMailer{}
	if _, err := service.NewContactService(mailer, nil, configured, "A", nil).Submit(context.Background(), domain.Form{Name: "Ana"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := service.NewContactService(mailer, nil, domain.ServiceParams{}, "A", nil).Submit(context.Background(), valid); !errors.Is(err, apperrors.ErrNotConfigured) {
		t.Fatalf("expected not configured, got %v", err)
	}
	if mailer.calls != 0 {
		t.Fatalf("mailer must not be called for rejected forms")
	}
}
