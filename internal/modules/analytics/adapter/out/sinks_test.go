package out

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"folio/internal/modules/analytics/domain"
	apperrors "folio/internal/platform/errors"
)

func TestGA4SinkPostsMeasurementProtocol(t *testing.T) {
	t.Parallel()
	var got ga4Payload
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewGA4Sink(srv.Client(), GA4Options{Endpoint: srv.URL + "/mp/collect", MeasurementID: "G-TEST", APISecret: "s3cret"})
	if err := sink.Send(context.Background(), "client-1", []domain.Event{domain.FormSubmission("contact"), domain.PageView("/")}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if query != "api_secret=s3cret&measurement_id=G-TEST" {
		t.Fatalf("unexpected query %q", query)
	}
	if got.ClientID != "client-1" || len(got.Events) != 2 {
		t.Fatalf("unexpected payload %+v", got)
	}
	if got.Events[0].Name != "form_submit" || got.Events[0].Params["event_label"] != "contact" {
		t.Fatalf("unexpected first event %+v", got.Events[0])
	}
}

func TestGA4SinkErrors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := NewGA4Sink(srv.Client(), GA4Options{Endpoint: srv.URL, MeasurementID: "G", APISecret: "s"}).
		Send(context.Background(), "c", []domain.Event{domain.Download("cv.pdf")})
	if !errors.Is(err, apperrors.ErrDeliveryFailed) {
		t.Fatalf("expected delivery failure, got %v", err)
	}
	err = NewGA4Sink(nil, GA4Options{Endpoint: srv.URL}).Send(context.Background(), "c", nil)
	if !errors.Is(err, apperrors.ErrNotConfigured) {
		t.Fatalf("expected not configured, got %v", err)
	}
}

func TestLogSinkWritesEvents(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.InfoLevel)
	value := int64(3)
	sink := NewLogSink(zap.New(core))
	if err := sink.Send(context.Background(), "c", []domain.Event{{Name: "custom", Category: "x", Value: &value}}); err != nil {
		t.Fatalf("send: %v", err)
	}
	entries := logs.All()
	if len(entries) != 1 || entries[0].LoggerName != "analytics" {
		t.Fatalf("unexpected log entries %+v", entries)
	}
	if entries[0].ContextMap()["value"] != int64(3) {
		t.Fatalf("value field missing: %+v", entries[0].ContextMap())
	}
}
