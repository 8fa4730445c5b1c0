package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"

	"github.com/ARSiddique/haz-itexperts-sub001/pkg/sanitizer"
)

type postmarkClient struct {
	client *postmark.Client
	config Config
}

// NewPostmarkClient creates a Postmark-backed email sender.
// The caller is expected to check cfg.Configured() first; constructing a
// client from an incomplete config is an error rather than a silent no-op.
func NewPostmarkClient(cfg Config) (Sender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !sanitizer.IsEmail(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if cfg.RecipientEmail == "" {
		return nil, fmt.Errorf("%w: RecipientEmail is required", ErrInvalidConfig)
	}
	if !sanitizer.IsEmail(cfg.RecipientEmail) {
		return nil, fmt.Errorf("%w: RecipientEmail must be a valid email address", ErrInvalidConfig)
	}

	return &postmarkClient{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}, nil
}

// MustNewPostmarkClient creates a Postmark client that panics on invalid
// config. Fails fast during initialization rather than allowing a broken
// sender to serve traffic.
func MustNewPostmarkClient(cfg Config) Sender {
	client, err := NewPostmarkClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// Send dispatches msg through Postmark's transactional API exactly once.
// Reply-To is taken from the message so replies route to the submitter
// rather than the sending system.
func (c *postmarkClient) Send(ctx context.Context, msg Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:     c.config.SenderEmail,
		ReplyTo:  msg.ReplyTo,
		To:       msg.To,
		Subject:  msg.Subject,
		Tag:      msg.Tag,
		TextBody: msg.BodyText,
		HTMLBody: msg.BodyHTML,
	})
	if err != nil {
		return "", errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return "", errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return resp.MessageID, nil
}
