// internal/app/system/mailer/mailer.go

// Package mailer builds outbound messages and relays them through SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ImplicitTLSPort is the submission port that speaks TLS from the first byte.
// Every other port connects in plaintext and upgrades with STARTTLS.
const ImplicitTLSPort = 465

// DefaultFrom is used when neither a sender nor an SMTP user is configured.
const DefaultFrom = "no-reply@example.com"

// ErrNotConfigured is returned when required relay settings are missing.
var ErrNotConfigured = errors.New("mail not configured")

// Config describes the relay and the fixed envelope of contact mail.
type Config struct {
	Host     string // SMTP relay host
	Port     int    // SMTP relay port (465 = implicit TLS, otherwise STARTTLS)
	User     string // SMTP username
	Pass     string // SMTP password
	From     string // sender address (your verified address)
	FromName string // optional display name for From
	To       string // where contact mail is delivered
}

// Validate reports every missing required field at once.
func (c Config) Validate() error {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "host")
	}
	if c.User == "" {
		missing = append(missing, "user")
	}
	if c.Pass == "" {
		missing = append(missing, "password")
	}
	if c.To == "" {
		missing = append(missing, "recipient")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrNotConfigured, strings.Join(missing, ", "))
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: invalid port %d", ErrNotConfigured, c.Port)
	}
	return nil
}

// ImplicitTLS reports whether the relay expects TLS on connect.
func (c Config) ImplicitTLS() bool {
	return c.Port == ImplicitTLSPort
}

// Sender returns the From address, falling back to the SMTP user and then
// to DefaultFrom.
func (c Config) Sender() string {
	switch {
	case c.From != "":
		return c.From
	case c.User != "":
		return c.User
	default:
		return DefaultFrom
	}
}

// Email is a fully addressed outbound message.
type Email struct {
	From      string
	FromName  string
	To        string
	ReplyTo   string
	Subject   string
	TextBody  string
	HTMLBody  string
	MessageID string // without angle brackets; generated when empty
}

// Sender delivers an Email. Implementations must be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Email) error
}
