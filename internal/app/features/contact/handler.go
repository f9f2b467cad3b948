// internal/app/features/contact/handler.go
package contact

import (
	"net/http"

	"github.com/dalemusser/portfolio/internal/app/system/apierror"
	"github.com/dalemusser/portfolio/internal/app/system/clientip"
	"github.com/dalemusser/portfolio/internal/app/system/inputval"
	"github.com/dalemusser/portfolio/internal/app/system/mailer"
	"github.com/dalemusser/portfolio/internal/app/system/normalize"
	"github.com/dalemusser/portfolio/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Messages returned to the browser. Internal details stay in the log.
const (
	msgRequired      = "Name, subject, and message are required."
	msgInvalidEmail  = "Valid email required."
	msgNotConfigured = "Email not configured on server."
	msgSendFailed    = "Unable to send email right now."
)

// Handler relays contact form submissions to the site owner.
type Handler struct {
	// Mail is nil when the relay is not configured; every submission that
	// passes validation is then answered with CONFIG.
	Mail    mailer.Sender
	MailCfg mailer.Config
	Log     *zap.Logger
}

// NewHandler constructs a contact Handler. sender may be nil.
func NewHandler(sender mailer.Sender, cfg mailer.Config, logger *zap.Logger) *Handler {
	return &Handler{
		Mail:    sender,
		MailCfg: cfg,
		Log:     logger,
	}
}

// ServeOptions answers CORS pre-flight requests for the contact endpoint.
// OPTIONS /api/contact
func (h *Handler) ServeOptions(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// ServeSubmit handles POST /api/contact.
//
// 200 {"ok":true}              sent, or discarded as spam
// 400 {"error":{"code":"VALIDATION",…}}
// 503 {"error":{"code":"CONFIG",…}}
// 502 {"error":{"code":"SMTP_ERROR",…}}
func (h *Handler) ServeSubmit(w http.ResponseWriter, r *http.Request) {
	raw := decodeSubmission(w, r)

	// Honeypot: bots fill every field. Pretend it worked.
	if normalize.Text(raw.Gotcha) != "" {
		h.Log.Info("contact submission discarded as spam",
			zap.String("ip", clientip.From(r)))
		apierror.WriteOK(w)
		return
	}

	sub := normalize.Contact(raw)

	if !inputval.Required(sub.Name, sub.Subject, sub.Message) {
		apierror.Write(w, apierror.Validation, msgRequired)
		return
	}
	if !inputval.IsValidEmail(sub.Email) {
		apierror.Write(w, apierror.Validation, msgInvalidEmail)
		return
	}

	if h.Mail == nil {
		h.Log.Warn("contact submission rejected: mail not configured",
			zap.String("ip", clientip.From(r)))
		apierror.Write(w, apierror.Config, msgNotConfigured)
		return
	}

	id := mailer.NewMessageID(h.MailCfg.Sender())
	msg := mailer.BuildContactEmail(sub, h.MailCfg, id)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.SMTP(), h.Log, "contact relay")
	defer cancel()

	if err := h.Mail.Send(ctx, msg); err != nil {
		h.Log.Error("contact relay failed",
			zap.String("message_id", id),
			zap.String("ip", clientip.From(r)),
			zap.Error(err))
		apierror.Write(w, apierror.SMTPError, msgSendFailed)
		return
	}

	h.Log.Info("contact submission relayed",
		zap.String("message_id", id),
		zap.String("ip", clientip.From(r)))
	apierror.WriteOK(w)
}
