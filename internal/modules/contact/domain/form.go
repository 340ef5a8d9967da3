package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// StatusClearAfter is how long a success or error status stays visible.
const StatusClearAfter = 5 * time.Second

// FormName labels contact submissions in analytics.
const FormName = "contact"

type Form struct {
	Name    string
	Email   string
	Message string
}

func (f Form) Trimmed() Form {
	return Form{Name: strings.TrimSpace(f.Name), Email: strings.TrimSpace(f.Email), Message: strings.TrimSpace(f.Message)}
}

func (f Form) Validate() error {
	f = f.Trimmed()
	switch {
	case f.Name == "":
		return fmt.Errorf("name is required")
	case f.Email == "":
		return fmt.Errorf("email is required")
	case f.Message == "":
		return fmt.Errorf("message is required")
	}
	addr, err := mail.ParseAddress(f.Email)
	if err != nil || addr.Address != f.Email {
		return fmt.Errorf("email %q is not a valid address", f.Email)
	}
	return nil
}

// TemplateParams is the fixed field set handed to the email template.
type TemplateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Message   string `json:"message"`
	ToName    string `json:"to_name"`
	ReplyTo   string `json:"reply_to"`
}

func NewTemplateParams(f Form, recipient string) TemplateParams {
	f = f.Trimmed()
	return TemplateParams{
		FromName:  f.Name,
		FromEmail: f.Email,
		Message:   f.Message,
		ToName:    recipient,
		ReplyTo:   f.Email,
	}
}

type ServiceParams struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
}

type Status string

const (
	StatusIdle    Status = ""
	StatusSending Status = "sending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)
