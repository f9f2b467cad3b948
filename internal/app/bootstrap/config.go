// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/portfolio/internal/app/system/mailer"
	"github.com/dalemusser/portfolio/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the portfolio.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mail_smtp_host, site_name, etc.
//   - Environment variables: PORTFOLIO_MAIL_SMTP_HOST, PORTFOLIO_SITE_NAME, etc.
//   - Command-line flags: --mail_smtp_host, --site_name, etc.
var appConfigKeys = []config.AppKey{
	// Email/SMTP configuration
	{Name: "mail_smtp_host", Default: "", Desc: "SMTP relay host"},
	{Name: "mail_smtp_port", Default: mailer.ImplicitTLSPort, Desc: "SMTP relay port (465 = implicit TLS, otherwise STARTTLS)"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "", Desc: "From email address (blank uses mail_smtp_user)"},
	{Name: "mail_from_name", Default: "", Desc: "From display name"},
	{Name: "mail_to", Default: "", Desc: "Recipient of contact form submissions"},
	{Name: "mail_timeout", Default: "30s", Desc: "Budget for one SMTP conversation (e.g., 30s, 1m)"},
	{Name: "mail_required", Default: false, Desc: "Abort startup when mail settings are incomplete"},

	// Site identity
	{Name: "site_name", Default: "Portfolio", Desc: "Site name shown in the page header"},
	{Name: "site_tagline", Default: "", Desc: "Short line under the site name"},
	{Name: "site_intro_html", Default: "", Desc: "Intro blurb; plain text or HTML (sanitized)"},

	// Content-Security-Policy
	{Name: "csp_connect_src", Default: "", Desc: "Comma-separated extra origins for connect-src"},
}

// envOverrides maps the bare SMTP/MAIL variables used by existing
// deployments onto app config. They win over values loaded by WAFFLE.
var envOverrides = []struct {
	Env   string
	Apply func(*AppConfig, string) error
}{
	{"SMTP_HOST", func(c *AppConfig, v string) error { c.MailSMTPHost = v; return nil }},
	{"SMTP_PORT", func(c *AppConfig, v string) error {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("SMTP_PORT %q: %w", v, err)
		}
		c.MailSMTPPort = port
		return nil
	}},
	{"SMTP_USER", func(c *AppConfig, v string) error { c.MailSMTPUser = v; return nil }},
	{"SMTP_PASS", func(c *AppConfig, v string) error { c.MailSMTPPass = v; return nil }},
	{"MAIL_FROM", func(c *AppConfig, v string) error { c.MailFrom = v; return nil }},
	{"MAIL_TO", func(c *AppConfig, v string) error { c.MailTo = v; return nil }},
}

// applyEnvOverrides copies every set, non-empty override variable into
// appCfg. lookup is os.LookupEnv outside of tests.
func applyEnvOverrides(appCfg *AppConfig, lookup func(string) (string, bool), logger *zap.Logger) error {
	for _, o := range envOverrides {
		v, ok := lookup(o.Env)
		if !ok || v == "" {
			continue
		}
		if err := o.Apply(appCfg, v); err != nil {
			return err
		}
		logger.Debug("config overridden from environment", zap.String("var", o.Env))
	}
	return nil
}

// splitList parses a comma-separated config value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, PORTFOLIO_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
//
// SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS, MAIL_FROM and MAIL_TO are
// applied last and take precedence over all of the above.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PORTFOLIO", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		// Email/SMTP
		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),
		MailTo:       appValues.String("mail_to"),
		MailTimeout:  appValues.Duration("mail_timeout", timeouts.DefaultSMTP),
		MailRequired: appValues.Bool("mail_required"),

		// Site
		SiteName:      appValues.String("site_name"),
		SiteTagline:   appValues.String("site_tagline"),
		SiteIntroHTML: appValues.String("site_intro_html"),

		CSPConnectSrc: splitList(appValues.String("csp_connect_src")),
	}

	if err := applyEnvOverrides(&appCfg, os.LookupEnv, logger); err != nil {
		return nil, AppConfig{}, err
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
//
// Incomplete mail settings are fatal only when mail_required is set.
// Otherwise the site starts and the contact endpoint answers CONFIG.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.MailSMTPPort < 1 || appCfg.MailSMTPPort > 65535 {
		return fmt.Errorf("mail_smtp_port must be between 1 and 65535, got %d", appCfg.MailSMTPPort)
	}
	if appCfg.MailTimeout <= 0 {
		return fmt.Errorf("mail_timeout must be positive, got %s", appCfg.MailTimeout)
	}

	if err := appCfg.MailConfig().Validate(); err != nil {
		if appCfg.MailRequired {
			logger.Error("mail settings incomplete", zap.Error(err))
			return fmt.Errorf("mail_required is set: %w", err)
		}
		logger.Warn("mail settings incomplete; contact form will be unavailable", zap.Error(err))
	}

	return nil
}

// mailTimeout returns the configured relay budget, or the default when unset.
func mailTimeout(appCfg AppConfig) time.Duration {
	if appCfg.MailTimeout > 0 {
		return appCfg.MailTimeout
	}
	return timeouts.DefaultSMTP
}
