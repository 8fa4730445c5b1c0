package lead

import (
	"context"
	"log/slog"
	"time"

	"github.com/ARSiddique/haz-itexperts-sub001/pkg/email"
	"github.com/ARSiddique/haz-itexperts-sub001/pkg/logger"
	"github.com/ARSiddique/haz-itexperts-sub001/pkg/requestid"
	"github.com/ARSiddique/haz-itexperts-sub001/pkg/sanitizer"
)

// Result is the terminal state of one submission. Every request produces
// exactly one Result; the entry points differ only in how they shape it.
type Result struct {
	Outcome   Outcome
	MessageID string
}

// Pipeline classifies a submission and dispatches the notification email.
// It is stateless across requests and safe for concurrent use.
type Pipeline struct {
	sender email.Sender // nil when mail is unconfigured
	to     string       // notification recipient
	log    *slog.Logger
	now    func() time.Time
}

// PipelineOption configures optional Pipeline dependencies.
type PipelineOption func(*Pipeline)

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(now func() time.Time) PipelineOption {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPipeline creates the shared intake pipeline. A nil sender or empty
// recipient marks mail as unconfigured: every otherwise-valid submission
// then resolves to OutcomeMailUnconfigured without any provider call.
func NewPipeline(sender email.Sender, recipient string, log *slog.Logger, opts ...PipelineOption) *Pipeline {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	p := &Pipeline{
		sender: sender,
		to:     recipient,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs one submission through validation, composition, and dispatch.
// Classification is first-match-wins: honeypot, then missing fields, then
// email shape, then mail configuration. The honeypot check runs before any
// validation so spam bots that fill every field short-circuit immediately;
// presence alone flags spam, the value is never inspected.
func (p *Pipeline) Process(ctx context.Context, f Fields, defaultLeadType string) Result {
	sub := Normalize(f)

	if sub.Honeypot != "" {
		p.log.InfoContext(ctx, "submission skipped",
			logger.Component("lead"),
			logger.Outcome(string(OutcomeSkippedHoneypot)),
			logger.RequestID(requestid.FromContext(ctx)),
		)
		return Result{Outcome: OutcomeSkippedHoneypot}
	}

	if sub.Name == "" || sub.Email == "" {
		return Result{Outcome: OutcomeMissingFields}
	}

	if !sanitizer.IsEmail(sub.Email) {
		return Result{Outcome: OutcomeInvalidEmail}
	}

	if p.sender == nil || p.to == "" {
		return Result{Outcome: OutcomeMailUnconfigured}
	}

	leadType := sub.Source
	if leadType == "" {
		leadType = defaultLeadType
	}

	n := Compose(sub, leadType, p.now())

	id, err := p.sender.Send(ctx, email.Message{
		To:       p.to,
		ReplyTo:  sub.Email,
		Subject:  n.Subject,
		BodyText: n.BodyText,
		BodyHTML: n.BodyHTML,
		Tag:      leadType,
	})
	if err != nil {
		// Operators get the provider detail; callers get a generic code.
		p.log.ErrorContext(ctx, "lead notification dispatch failed",
			logger.Component("lead"),
			logger.Error(err),
			logger.RequestID(requestid.FromContext(ctx)),
		)
		return Result{Outcome: OutcomeServerError}
	}

	p.log.InfoContext(ctx, "lead notification sent",
		logger.Component("lead"),
		logger.MessageID(id),
		logger.RequestID(requestid.FromContext(ctx)),
	)
	return Result{Outcome: OutcomeSent, MessageID: id}
}
