package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"folio/internal/modules/analytics/domain"
	apperrors "folio/internal/platform/errors"
)

type GA4Options struct {
	Endpoint      string
	MeasurementID string
	APISecret     string
}

// GA4Sink posts events to the GA4 Measurement Protocol.
type GA4Sink struct {
	client *http.Client
	opts   GA4Options
}

func NewGA4Sink(client *http.Client, opts GA4Options) *GA4Sink {
	if client == nil {
		client = http.DefaultClient
	}
	return &GA4Sink{client: client, opts: opts}
}

type ga4Payload struct {
	ClientID string     `json:"client_id"`
	Events   []ga4Event `json:"events"`
}

type ga4Event struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

func (s *GA4Sink) Send(ctx context.Context, clientID string, events []domain.Event) error {
	if s.opts.MeasurementID == "" || s.opts.APISecret == "" {
		return fmt.Errorf("%w: ga4 measurement id and api secret", apperrors.ErrNotConfigured)
	}
	endpoint, err := url.Parse(s.opts.Endpoint)
	if err != nil {
		return fmt.Errorf("parse ga4 endpoint: %w", err)
	}
	q := endpoint.Query()
	q.Set("measurement_id", s.opts.MeasurementID)
	q.Set("api_secret", s.opts.APISecret)
	endpoint.RawQuery = q.Encode()

	payload := ga4Payload{ClientID: clientID, Events: make([]ga4Event, 0, len(events))}
	for _, e := range events {
		params := map[string]any{}
		if e.Category != "" {
			params["event_category"] = e.Category
		}
		if e.Label != "" {
			params["event_label"] = e.Label
		}
		if e.Value != nil {
			params["value"] = *e.Value
		}
		if e.Path != "" {
			params["page_location"] = e.Path
		}
		payload.Events = append(payload.Events, ga4Event{Name: e.Name, Params: params})
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode ga4 payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build ga4 request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: ga4: %v", apperrors.ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: ga4 status %d", apperrors.ErrDeliveryFailed, resp.StatusCode)
	}
	return nil
}
