package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevSender implements Sender for local development. It saves each email as
// an HTML file plus a JSON metadata file in a directory instead of calling
// an email provider, and returns a generated UUID as the message id.
type DevSender struct {
	dir string
}

// NewDevSender creates a development email sender that saves emails to disk.
// The directory is created on first send if it does not exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

type devMetadata struct {
	MessageID string `json:"message_id"`
	Timestamp string `json:"timestamp"`
	To        string `json:"to"`
	ReplyTo   string `json:"reply_to,omitempty"`
	Subject   string `json:"subject"`
	BodyText  string `json:"body_text,omitempty"`
	Tag       string `json:"tag,omitempty"`
}

// Send writes the email to the configured directory.
func (d *DevSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return "", fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := time.Now()
	id := uuid.NewString()
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(msg.Subject))

	htmlPath := filepath.Join(d.dir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(msg.BodyHTML), 0644); err != nil {
		return "", fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSendEmail, err)
	}

	meta := devMetadata{
		MessageID: id,
		Timestamp: now.Format(time.RFC3339),
		To:        msg.To,
		ReplyTo:   msg.ReplyTo,
		Subject:   msg.Subject,
		BodyText:  msg.BodyText,
		Tag:       msg.Tag,
	}
	jsonData, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}

	jsonPath := filepath.Join(d.dir, base+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	return id, nil
}

// filenameRE matches characters that are not alphanumeric, dash, underscore, or dot.
var filenameRE = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a subject line into a safe filename fragment.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = filenameRE.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
