// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"time"

	"github.com/dalemusser/portfolio/internal/app/system/mailer"
	"github.com/dalemusser/portfolio/internal/app/system/viewdata"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// The struct is passed to every lifecycle hook, so anything needed during
// startup, request handling, or shutdown lives here.
type AppConfig struct {
	// Email/SMTP configuration
	MailSMTPHost string        // SMTP relay host (e.g., smtp.gmail.com)
	MailSMTPPort int           // 465 for implicit TLS, anything else uses STARTTLS
	MailSMTPUser string        // SMTP username
	MailSMTPPass string        // SMTP password
	MailFrom     string        // From address; blank falls back to MailSMTPUser
	MailFromName string        // From display name
	MailTo       string        // Where contact submissions are delivered
	MailTimeout  time.Duration // Budget for one relay conversation
	MailRequired bool          // Refuse to start without complete mail settings

	// Site identity shown on the landing page
	SiteName      string
	SiteTagline   string
	SiteIntroHTML string // Sanitized before display

	// Extra origins the page script may call (Content-Security-Policy connect-src)
	CSPConnectSrc []string
}

// MailConfig returns the relay settings in the form the mailer expects.
func (c AppConfig) MailConfig() mailer.Config {
	return mailer.Config{
		Host:     c.MailSMTPHost,
		Port:     c.MailSMTPPort,
		User:     c.MailSMTPUser,
		Pass:     c.MailSMTPPass,
		From:     c.MailFrom,
		FromName: c.MailFromName,
		To:       c.MailTo,
	}
}

// Site returns the identity rendered on every page.
func (c AppConfig) Site() viewdata.Site {
	return viewdata.Site{
		Name:      c.SiteName,
		Tagline:   c.SiteTagline,
		IntroHTML: c.SiteIntroHTML,
	}
}
