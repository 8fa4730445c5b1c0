package lead_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARSiddique/haz-itexperts-sub001/svc/lead"
)

func postForm(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Host = "www.itexperts.example"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func siteConfig() lead.Config {
	return lead.Config{
		SiteURL:      "https://www.itexperts.example",
		RedirectPath: "/thank-you",
	}
}

func TestHandlerRedirects(t *testing.T) {
	t.Parallel()

	t.Run("valid submission redirects with sent=1", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{id: "pm-9"}
		h := lead.NewHandler(lead.NewPipeline(sender, leadRecipient, nil, fixedClock()), siteConfig(), nil)

		form := url.Values{}
		form.Set("name", "Jane Doe")
		form.Set("email", "jane@acme.com")
		form.Set("message", "Need help with backups")

		rec := postForm(t, h, form)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "https://www.itexperts.example/thank-you?sent=1", rec.Header().Get("Location"))
		assert.Equal(t, 1, sender.calls)
	})

	t.Run("missing name redirects with error=missing", func(t *testing.T) {
		t.Parallel()

		h := lead.NewHandler(lead.NewPipeline(&fakeSender{}, leadRecipient, nil), siteConfig(), nil)

		form := url.Values{}
		form.Set("name", "")
		form.Set("email", "jane@acme.com")

		rec := postForm(t, h, form)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.True(t, strings.HasSuffix(rec.Header().Get("Location"), "error=missing"))
	})

	t.Run("invalid email redirects with error=invalidEmail", func(t *testing.T) {
		t.Parallel()

		h := lead.NewHandler(lead.NewPipeline(&fakeSender{}, leadRecipient, nil), siteConfig(), nil)

		form := url.Values{}
		form.Set("name", "Jane")
		form.Set("email", "missing@dot")

		rec := postForm(t, h, form)
		assert.True(t, strings.HasSuffix(rec.Header().Get("Location"), "error=invalidEmail"))
	})

	t.Run("honeypot masked as success", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{}
		h := lead.NewHandler(lead.NewPipeline(sender, leadRecipient, nil), siteConfig(), nil)

		form := url.Values{}
		form.Set("name", "Bot")
		form.Set("email", "x@y.com")
		form.Set("website", "http://spam.example")

		rec := postForm(t, h, form)

		assert.True(t, strings.HasSuffix(rec.Header().Get("Location"), "sent=1"))
		assert.Zero(t, sender.calls)
	})

	t.Run("mail unconfigured redirects with error=mailConfig", func(t *testing.T) {
		t.Parallel()

		h := lead.NewHandler(lead.NewPipeline(nil, "", nil), siteConfig(), nil)

		form := url.Values{}
		form.Set("name", "Jane")
		form.Set("email", "jane@acme.com")

		rec := postForm(t, h, form)
		assert.True(t, strings.HasSuffix(rec.Header().Get("Location"), "error=mailConfig"))
	})

	t.Run("relative redirect target resolved against site url", func(t *testing.T) {
		t.Parallel()

		h := lead.NewHandler(lead.NewPipeline(&fakeSender{id: "x"}, leadRecipient, nil, fixedClock()), siteConfig(), nil)

		form := url.Values{}
		form.Set("name", "Jane")
		form.Set("email", "jane@acme.com")
		form.Set("redirectTo", "/services/backup-recovery")

		rec := postForm(t, h, form)
		assert.Equal(t, "https://www.itexperts.example/services/backup-recovery?sent=1", rec.Header().Get("Location"))
	})

	t.Run("absolute redirect target kept as is", func(t *testing.T) {
		t.Parallel()

		h := lead.NewHandler(lead.NewPipeline(&fakeSender{id: "x"}, leadRecipient, nil, fixedClock()), siteConfig(), nil)

		form := url.Values{}
		form.Set("name", "Jane")
		form.Set("email", "jane@acme.com")
		form.Set("redirectTo", "https://landing.itexperts.example/done")

		rec := postForm(t, h, form)
		assert.Equal(t, "https://landing.itexperts.example/done?sent=1", rec.Header().Get("Location"))
	})

	t.Run("request origin used when no site url configured", func(t *testing.T) {
		t.Parallel()

		cfg := lead.Config{RedirectPath: "/thank-you"}
		h := lead.NewHandler(lead.NewPipeline(&fakeSender{id: "x"}, leadRecipient, nil, fixedClock()), cfg, nil)

		form := url.Values{}
		form.Set("name", "Jane")
		form.Set("email", "jane@acme.com")

		rec := postForm(t, h, form)
		assert.Equal(t, "http://www.itexperts.example/thank-you?sent=1", rec.Header().Get("Location"))
	})

	t.Run("existing query on redirect target preserved", func(t *testing.T) {
		t.Parallel()

		h := lead.NewHandler(lead.NewPipeline(&fakeSender{id: "x"}, leadRecipient, nil, fixedClock()), siteConfig(), nil)

		form := url.Values{}
		form.Set("name", "Jane")
		form.Set("email", "jane@acme.com")
		form.Set("redirectTo", "/thank-you?ref=footer")

		rec := postForm(t, h, form)

		loc, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "footer", loc.Query().Get("ref"))
		assert.Equal(t, "1", loc.Query().Get("sent"))
	})

	t.Run("json submission accepted", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{id: "pm-9"}
		h := lead.NewHandler(lead.NewPipeline(sender, leadRecipient, nil, fixedClock()), siteConfig(), nil)

		body := `{"name":"Jane Doe","email":"jane@acme.com","message":"hello"}`
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Host = "www.itexperts.example"

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.True(t, strings.HasSuffix(rec.Header().Get("Location"), "sent=1"))
		assert.Equal(t, 1, sender.calls)
	})

	t.Run("malformed body resolves to missing fields", func(t *testing.T) {
		t.Parallel()

		h := lead.NewHandler(lead.NewPipeline(&fakeSender{}, leadRecipient, nil), siteConfig(), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{broken"))
		req.Header.Set("Content-Type", "application/json")
		req.Host = "www.itexperts.example"

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.True(t, strings.HasSuffix(rec.Header().Get("Location"), "error=missing"))
	})

	t.Run("panic falls back to default landing with error=server", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{panicking: true}
		h := lead.NewHandler(lead.NewPipeline(sender, leadRecipient, nil, fixedClock()), siteConfig(), nil)

		form := url.Values{}
		form.Set("name", "Jane")
		form.Set("email", "jane@acme.com")

		rec := postForm(t, h, form)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "https://www.itexperts.example/thank-you?error=server", rec.Header().Get("Location"))
	})

	t.Run("non-POST rejected with Allow header", func(t *testing.T) {
		t.Parallel()

		h := lead.NewHandler(lead.NewPipeline(nil, "", nil), siteConfig(), nil)

		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			req := httptest.NewRequest(method, "/api/contact", nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
			assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"), method)
		}
	})
}
