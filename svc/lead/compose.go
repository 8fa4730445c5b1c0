package lead

import (
	"fmt"
	"strings"
	"time"

	"github.com/ARSiddique/haz-itexperts-sub001/pkg/sanitizer"
)

// Notification is the composed email for one valid submission. It is a pure
// function of the submission, the lead type, and the generation timestamp:
// identical inputs yield byte-identical output.
type Notification struct {
	Subject  string
	BodyText string
	BodyHTML string
}

const noMessagePlaceholder = "(no message)"

// Compose builds the notification email for a valid submission.
// The HTML body contains only escaped user input; it is interpolated into
// markup directly, with no templating engine escaping behind it.
func Compose(sub Submission, leadType string, ts time.Time) Notification {
	return Notification{
		Subject:  fmt.Sprintf("New %s lead — %s", leadType, sub.Name),
		BodyText: composeText(sub, leadType, ts),
		BodyHTML: composeHTML(sub, leadType, ts),
	}
}

func composeText(sub Submission, leadType string, ts time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New %s lead\n", leadType)
	fmt.Fprintf(&b, "Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	if sub.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", sub.Phone)
	}
	b.WriteString("\nMessage:\n")
	if sub.Message != "" {
		b.WriteString(sub.Message)
	} else {
		b.WriteString(noMessagePlaceholder)
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Received: %s\n", ts.UTC().Format(time.RFC3339))

	return b.String()
}

func composeHTML(sub Submission, leadType string, ts time.Time) string {
	name := sanitizer.EscapeHTML(sub.Name)
	email := sanitizer.EscapeHTML(sub.Email)
	phone := sanitizer.EscapeHTML(sub.Phone)

	message := noMessagePlaceholder
	if sub.Message != "" {
		message = sanitizer.EscapeHTML(sub.Message)
	}

	var b strings.Builder

	b.WriteString(`<div style="font-family:Arial,Helvetica,sans-serif;font-size:14px;color:#1f2933">`)
	fmt.Fprintf(&b, `<h2 style="font-size:16px;margin:0 0 12px">New %s lead</h2>`, sanitizer.EscapeHTML(leadType))
	fmt.Fprintf(&b, `<p style="margin:4px 0"><strong>Name:</strong> %s</p>`, name)
	fmt.Fprintf(&b, `<p style="margin:4px 0"><strong>Email:</strong> <a href="mailto:%s">%s</a></p>`, email, email)
	if sub.Phone != "" {
		fmt.Fprintf(&b, `<p style="margin:4px 0"><strong>Phone:</strong> %s</p>`, phone)
	}
	b.WriteString(`<p style="margin:12px 0 4px"><strong>Message:</strong></p>`)
	// pre-wrap keeps the submitter's line breaks without <br> substitution.
	fmt.Fprintf(&b, `<div style="white-space:pre-wrap;border-left:3px solid #d3dce6;padding-left:12px">%s</div>`, message)
	fmt.Fprintf(&b, `<p style="margin-top:16px;font-size:12px;color:#7b8794">Received %s</p>`,
		ts.UTC().Format("January 2, 2006 at 3:04 PM MST"))
	b.WriteString(`</div>`)

	return b.String()
}
