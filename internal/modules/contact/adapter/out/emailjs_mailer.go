package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"folio/internal/modules/contact/domain"
	apperrors "folio/internal/platform/errors"
)

const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSMailer sends through the EmailJS REST API.
type EmailJSMailer struct {
	client   *http.Client
	endpoint string
}

func NewEmailJSMailer(endpoint string, timeout time.Duration) *EmailJSMailer {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &EmailJSMailer{client: &http.Client{Timeout: timeout}, endpoint: endpoint}
}

type sendRequest struct {
	ServiceID      string                `json:"service_id"`
	TemplateID     string                `json:"template_id"`
	UserID         string                `json:"user_id"`
	TemplateParams domain.TemplateParams `json:"template_params"`
}

func (m *EmailJSMailer) Send(ctx context.Context, service domain.ServiceParams, params domain.TemplateParams) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      service.ServiceID,
		TemplateID:     service.TemplateID,
		UserID:         service.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("encode emailjs request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: emailjs: %v", apperrors.ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()
	text, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: emailjs status %d: %s", apperrors.ErrDeliveryFailed, resp.StatusCode, strings.TrimSpace(string(text)))
	}
	return nil
}
