// Package lead implements the intake pipeline for contact and assessment
// form submissions: decoding, spam suppression, normalization, validation,
// notification composition, and best-effort email dispatch.
//
// Two entry points share one pipeline. Handler answers plain HTML form posts
// with a 303 redirect carrying the outcome in a query parameter; Action
// serves script-driven forms and returns a structured result.
package lead

import (
	"github.com/ARSiddique/haz-itexperts-sub001/pkg/sanitizer"
)

// Field length caps. Oversized input is truncated silently.
const (
	maxFieldLen   = 2000 // name, email, phone
	maxMessageLen = 5000
)

// Fields is a raw submission: one string value per form field. It carries
// no identity and lives only for the duration of one request.
type Fields map[string]string

// Submission is the normalized, immutable view of a raw submission.
type Submission struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	Honeypot   string
	RedirectTo string
	Source     string
}

// Normalize derives a Submission from raw fields: values are trimmed and
// capped, the email is lower-cased. The structured form posts the submitter
// address under "workEmail"; it is accepted as an alias when "email" is
// absent.
func Normalize(f Fields) Submission {
	email := f["email"]
	if email == "" {
		email = f["workEmail"]
	}

	return Submission{
		Name:       sanitizer.MaxLength(sanitizer.Trim(f["name"]), maxFieldLen),
		Email:      sanitizer.MaxLength(sanitizer.NormalizeEmail(email), maxFieldLen),
		Phone:      sanitizer.MaxLength(sanitizer.Trim(f["phone"]), maxFieldLen),
		Message:    sanitizer.MaxLength(sanitizer.Trim(f["message"]), maxMessageLen),
		Honeypot:   sanitizer.Trim(f["website"]),
		RedirectTo: sanitizer.Trim(f["redirectTo"]),
		Source:     sanitizer.MaxLength(sanitizer.Trim(f["source"]), maxFieldLen),
	}
}

// Outcome classifies the handling of one submission. Exactly one outcome is
// produced per request; it drives both the redirect query parameter and the
// structured result.
type Outcome string

const (
	OutcomeSent             Outcome = "sent"
	OutcomeSkippedHoneypot  Outcome = "skippedHoneypot"
	OutcomeMissingFields    Outcome = "rejectedMissingFields"
	OutcomeInvalidEmail     Outcome = "rejectedInvalidEmail"
	OutcomeMailUnconfigured Outcome = "rejectedMailUnconfigured"
	OutcomeServerError      Outcome = "failedServerError"
)

// errorCode maps a rejection outcome to the short code exposed to callers.
// OutcomeSent and OutcomeSkippedHoneypot have no error code: spam is masked
// as success so bots receive no signal distinguishing suppression from
// acceptance.
func errorCode(o Outcome) string {
	switch o {
	case OutcomeMissingFields:
		return "missing"
	case OutcomeInvalidEmail:
		return "invalidEmail"
	case OutcomeMailUnconfigured:
		return "mailConfig"
	case OutcomeServerError:
		return "server"
	default:
		return ""
	}
}

// Config holds lead-intake configuration.
type Config struct {
	// SiteURL is the canonical site origin used to resolve relative
	// redirect targets. When empty the inbound request's own origin is used.
	SiteURL string `env:"SITE_URL"`
	// RedirectPath is the default landing page for form posts that do not
	// name a redirect target.
	RedirectPath string `env:"LEAD_REDIRECT_PATH" envDefault:"/thank-you"`
	// DevFallback makes the structured variant report success when mail is
	// unconfigured, so local form testing works without credentials. It has
	// no effect on the redirect variant.
	DevFallback bool `env:"LEAD_DEV_FALLBACK" envDefault:"false"`
}
