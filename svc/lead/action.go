package lead

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// ActionResult is the structured variant's response: always a renderable
// object, never a raw failure.
type ActionResult struct {
	OK      bool   `json:"ok"`
	Dev     bool   `json:"dev,omitempty"`     // mail unconfigured, reported as success for local testing
	ID      string `json:"id,omitempty"`      // provider message id on real success
	Skipped string `json:"skipped,omitempty"` // "honeypot" when spam was suppressed
	Error   string `json:"error,omitempty"`   // short code on rejection or failure
}

// Action is the programmatic intake entry point for script-driven forms.
// Fields carry the keys name, workEmail, message, source, and website (the
// honeypot). Unlike the redirect variant, a dev fallback can mask a missing
// mail configuration as success; the two behaviors are deliberately distinct.
type Action struct {
	pipeline    *Pipeline
	devFallback bool
}

// NewAction creates the structured intake action over the shared pipeline.
func NewAction(p *Pipeline, devFallback bool) *Action {
	return &Action{pipeline: p, devFallback: devFallback}
}

// Submit runs one submission through the pipeline and shapes the result.
func (a *Action) Submit(ctx context.Context, f Fields) ActionResult {
	return a.shape(a.pipeline.Process(ctx, f, "website"))
}

func (a *Action) shape(res Result) ActionResult {
	switch res.Outcome {
	case OutcomeSent:
		return ActionResult{OK: true, ID: res.MessageID}
	case OutcomeSkippedHoneypot:
		// Bots are told they succeeded.
		return ActionResult{OK: true, Skipped: "honeypot"}
	case OutcomeMailUnconfigured:
		if a.devFallback {
			return ActionResult{OK: true, Dev: true}
		}
		return ActionResult{OK: false, Error: errorCode(res.Outcome)}
	default:
		return ActionResult{OK: false, Error: errorCode(res.Outcome)}
	}
}

// NewActionHandler exposes the structured action over HTTP for the
// script-driven forms: POST with a JSON or form-encoded body, answered with
// the ActionResult as JSON.
func NewActionHandler(a *Action, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return intakeHandler{
		pipeline: a.pipeline,
		shaper:   jsonShaper{action: a},
		leadType: "website",
		log:      log,
	}
}

// jsonShaper renders a Result as the structured ActionResult object.
type jsonShaper struct {
	action *Action
}

func (s jsonShaper) Respond(w http.ResponseWriter, r *http.Request, _ Fields, res Result) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(s.action.shape(res))
}
