// internal/app/system/mailer/compose.go
package mailer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dalemusser/portfolio/internal/app/system/normalize"
	"github.com/emersion/go-message/mail"
	"github.com/google/uuid"
)

// Compose renders msg as an RFC 5322 message with a text part and, when
// present, an HTML alternative. Header values are stripped of CR and LF.
func Compose(msg Email) ([]byte, error) {
	from := normalize.HeaderValue(msg.From)
	to := normalize.HeaderValue(msg.To)
	if from == "" || to == "" {
		return nil, fmt.Errorf("compose: from and to are required")
	}

	var h mail.Header
	h.SetDate(time.Now())
	h.SetAddressList("From", []*mail.Address{{Name: normalize.HeaderValue(msg.FromName), Address: from}})
	h.SetAddressList("To", []*mail.Address{{Address: to}})
	if rt := normalize.HeaderValue(msg.ReplyTo); rt != "" {
		h.SetAddressList("Reply-To", []*mail.Address{{Address: rt}})
	}
	h.SetSubject(normalize.HeaderValue(msg.Subject))

	id := normalize.HeaderValue(msg.MessageID)
	if id == "" {
		id = NewMessageID(from)
	}
	h.SetMessageID(id)

	var buf bytes.Buffer
	iw, err := mail.CreateInlineWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	if err := writePart(iw, "text/plain", msg.TextBody); err != nil {
		return nil, err
	}
	if msg.HTMLBody != "" {
		if err := writePart(iw, "text/html", msg.HTMLBody); err != nil {
			return nil, err
		}
	}
	if err := iw.Close(); err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	return buf.Bytes(), nil
}

func writePart(iw *mail.InlineWriter, contentType, body string) error {
	var ph mail.InlineHeader
	ph.SetContentType(contentType, map[string]string{"charset": "utf-8"})
	ph.Set("Content-Transfer-Encoding", "quoted-printable")
	w, err := iw.CreatePart(ph)
	if err != nil {
		return fmt.Errorf("compose %s part: %w", contentType, err)
	}
	if _, err := io.WriteString(w, body); err != nil {
		w.Close()
		return fmt.Errorf("compose %s part: %w", contentType, err)
	}
	return w.Close()
}

// NewMessageID returns a unique id in the sender's domain.
func NewMessageID(from string) string {
	domain := "localhost"
	if at := strings.LastIndexByte(from, '@'); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return uuid.NewString() + "@" + domain
}
