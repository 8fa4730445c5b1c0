package email

import (
	"context"
	"fmt"

	"github.com/ARSiddique/haz-itexperts-sub001/pkg/sanitizer"
)

// Sender dispatches a single transactional email and returns the provider
// message identifier.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Message represents one outbound notification email.
type Message struct {
	To       string `json:"to"`                 // Email address of the recipient
	ReplyTo  string `json:"reply_to,omitempty"` // Replies route here (the submitter)
	Subject  string `json:"subject"`            // Subject of the email
	BodyText string `json:"body_text"`          // Plain-text body
	BodyHTML string `json:"body_html"`          // HTML body
	Tag      string `json:"tag,omitempty"`      // Optional, for provider analytics
}

// Validate checks that the message can be dispatched.
func (m Message) Validate() error {
	if m.To == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidParams)
	}
	if !sanitizer.IsEmail(m.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidParams)
	}
	if m.Subject == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if m.BodyText == "" && m.BodyHTML == "" {
		return fmt.Errorf("%w: message body is required", ErrInvalidParams)
	}
	return nil
}
