package email

import (
	"context"
	"errors"

	"github.com/dmitrymomot/mailtheme/pkg/validator"
)

// EmailSender sends a rendered email.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	Tag      string `json:"tag,omitempty"` // Optional
}

const maxSubjectLen = 255

// Validate reports every invalid field at once.
func (p SendEmailParams) Validate() error {
	err := validator.Apply(
		validator.ValidEmail("send_to", p.SendTo),
		validator.Required("subject", p.Subject),
		validator.MaxLen("subject", p.Subject, maxSubjectLen),
		validator.Required("body_html", p.BodyHTML),
	)
	if err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	return nil
}

// NewSender picks the delivery backend: Postmark when its tokens are set,
// the file-writing DevSender otherwise.
func NewSender(cfg Config) (EmailSender, error) {
	if cfg.UsePostmark() {
		return NewPostmarkClient(cfg)
	}
	if cfg.DevDir == "" {
		return nil, errors.Join(ErrInvalidConfig, errors.New("EMAIL_DEV_DIR is required without Postmark tokens"))
	}
	return NewDevSender(cfg.DevDir), nil
}
