// internal/app/system/mailer/smtp.go
package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strconv"

	"github.com/dalemusser/portfolio/internal/app/system/normalize"
	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"go.uber.org/zap"
)

// SMTP relays mail through an authenticated submission server. Each Send
// opens its own connection and closes it before returning.
type SMTP struct {
	cfg       Config
	addr      string
	tlsConfig *tls.Config
	log       *zap.Logger
}

// Option customises an SMTP sender.
type Option func(*SMTP)

// WithTLSConfig replaces the TLS settings used for both implicit TLS and
// STARTTLS. ServerName defaults to the configured host.
func WithTLSConfig(tc *tls.Config) Option {
	return func(s *SMTP) {
		s.tlsConfig = tc.Clone()
	}
}

// WithAddr dials addr instead of host:port. Transport selection still
// follows the configured port.
func WithAddr(addr string) Option {
	return func(s *SMTP) {
		s.addr = addr
	}
}

// NewSMTP validates cfg and returns a sender for it.
func NewSMTP(cfg Config, logger *zap.Logger, opts ...Option) (*SMTP, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &SMTP{
		cfg:       cfg,
		addr:      net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		tlsConfig: &tls.Config{MinVersion: tls.VersionTLS12},
		log:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tlsConfig.ServerName == "" {
		s.tlsConfig.ServerName = cfg.Host
	}
	return s, nil
}

// Config returns the relay configuration the sender was built with.
func (s *SMTP) Config() Config {
	return s.cfg
}

// Send composes msg and delivers it in one relay conversation. The context
// bounds the whole conversation; cancelling it closes the connection.
func (s *SMTP) Send(ctx context.Context, msg Email) error {
	raw, err := Compose(msg)
	if err != nil {
		return err
	}

	c, stop, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer stop()
	defer c.Close()

	if err := c.Auth(sasl.NewPlainClient("", s.cfg.User, s.cfg.Pass)); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := c.SendMail(normalize.HeaderValue(msg.From), []string{normalize.HeaderValue(msg.To)}, bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	// The relay has accepted the message at this point; a failed QUIT must
	// not be reported as a failed delivery.
	if err := c.Quit(); err != nil {
		s.log.Warn("smtp quit failed after delivery", zap.String("addr", s.addr), zap.Error(err))
	}
	return nil
}

// dial connects and, depending on the port, negotiates implicit TLS or
// STARTTLS. The returned client is always encrypted. The returned stop func
// detaches the connection from ctx and must be called once the client is
// closed.
func (s *SMTP) dial(ctx context.Context) (*smtp.Client, func() bool, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return nil, nil, fmt.Errorf("smtp dial %s: %w", s.addr, err)
	}

	// Tie the connection's lifetime to ctx for the rest of the conversation.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	closeAll := func() {
		stop()
		conn.Close()
	}

	if s.cfg.ImplicitTLS() {
		tlsConn := tls.Client(conn, s.tlsConfig)
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("smtp tls handshake %s: %w", s.addr, err)
		}
		return smtp.NewClient(tlsConn), stop, nil
	}

	c, err := smtp.NewClientStartTLS(conn, s.tlsConfig)
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("smtp starttls %s: %w", s.addr, err)
	}
	return c, stop, nil
}
