package lead

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/ARSiddique/haz-itexperts-sub001/pkg/clientip"
	"github.com/ARSiddique/haz-itexperts-sub001/pkg/logger"
	"github.com/ARSiddique/haz-itexperts-sub001/pkg/requestid"
)

// ResponseShaper renders a pipeline Result back to the caller. The redirect
// shaper answers with a 303 carrying the outcome in a query parameter; the
// JSON shaper answers with a structured result object. Both consume the same
// Result, so validation and dispatch logic exists exactly once.
type ResponseShaper interface {
	Respond(w http.ResponseWriter, r *http.Request, f Fields, res Result)
}

// intakeHandler is the shared HTTP entry point: method guard, decode,
// pipeline, shape. Panics never escape; they degrade to a server-error
// response through the shaper's fallback.
type intakeHandler struct {
	pipeline *Pipeline
	shaper   ResponseShaper
	leadType string
	log      *slog.Logger
}

func (h intakeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			h.log.ErrorContext(r.Context(), "lead intake panicked",
				logger.Component("lead"),
				logger.Error(fmt.Errorf("panic: %v", rec)),
				logger.RequestID(requestid.FromContext(r.Context())),
			)
			h.shaper.Respond(w, r, nil, Result{Outcome: OutcomeServerError})
		}
	}()

	fields := DecodeFields(r)
	res := h.pipeline.Process(r.Context(), fields, h.leadType)

	h.log.InfoContext(r.Context(), "lead submission handled",
		logger.Component("lead"),
		logger.Outcome(string(res.Outcome)),
		logger.ClientIP(clientip.GetIP(r)),
		logger.RequestID(requestid.FromContext(r.Context())),
	)

	h.shaper.Respond(w, r, fields, res)
}

// NewHandler returns the redirect-style intake endpoint for plain HTML form
// posts. It accepts JSON or form-encoded bodies and answers with an HTTP 303
// back to the caller-specified page, encoding the outcome as a query
// parameter (`sent=1` or `error=<code>`).
func NewHandler(p *Pipeline, cfg Config, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return intakeHandler{
		pipeline: p,
		shaper:   redirectShaper{cfg: cfg},
		leadType: "contact",
		log:      log,
	}
}

// redirectShaper implements the redirect-based response protocol: outcome is
// communicated to a script-free browser via the Location query string.
type redirectShaper struct {
	cfg Config
}

func (s redirectShaper) Respond(w http.ResponseWriter, r *http.Request, f Fields, res Result) {
	target := ""
	if f != nil {
		target = Normalize(f).RedirectTo
	}

	http.Redirect(w, r, s.location(r, target, res.Outcome), http.StatusSeeOther)
}

// location builds the absolute redirect URL: the (possibly relative) target
// resolved against the configured site origin, or the inbound request's own
// origin when no site URL is configured.
func (s redirectShaper) location(r *http.Request, target string, outcome Outcome) string {
	base := s.base(r)

	if target == "" {
		target = s.cfg.RedirectPath
	}

	dest, err := url.Parse(target)
	if err != nil {
		if dest, err = url.Parse(s.cfg.RedirectPath); err != nil {
			dest = &url.URL{Path: "/"}
		}
	}
	resolved := base.ResolveReference(dest)

	q := resolved.Query()
	switch outcome {
	case OutcomeSent, OutcomeSkippedHoneypot:
		// Spam is masked as success.
		q.Set("sent", "1")
	default:
		q.Set("error", errorCode(outcome))
	}
	resolved.RawQuery = q.Encode()

	return resolved.String()
}

func (s redirectShaper) base(r *http.Request) *url.URL {
	if s.cfg.SiteURL != "" {
		if u, err := url.Parse(s.cfg.SiteURL); err == nil && u.Host != "" {
			return u
		}
	}

	scheme := "http"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}
	return &url.URL{Scheme: scheme, Host: r.Host}
}
