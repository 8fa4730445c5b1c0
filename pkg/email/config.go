package email

// Config holds outbound mail configuration.
// All fields are optional: the service degrades to reporting a
// mail-configuration error on every submission instead of refusing to
// start, so the site keeps serving while credentials are absent.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"LEAD_FROM_EMAIL"`
	RecipientEmail       string `env:"LEAD_TO_EMAIL"`

	// DevDir, when set, routes outbound mail to HTML/JSON files in this
	// directory instead of Postmark. Useful for local form testing.
	DevDir string `env:"EMAIL_DEV_DIR"`
}

// Configured reports whether dispatch can be attempted: the provider
// credential, the from-address, and the to-address must all be present.
func (c Config) Configured() bool {
	return c.PostmarkServerToken != "" && c.SenderEmail != "" && c.RecipientEmail != ""
}
