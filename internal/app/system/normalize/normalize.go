// Package normalize trims and cleans user-supplied strings before they are
// validated or copied into outbound mail.
package normalize

import (
	"strings"

	"github.com/dalemusser/portfolio/internal/domain/models"
)

var headerBreaks = strings.NewReplacer("\r", "", "\n", "")

// Text trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(s)
}

// HeaderValue removes carriage returns and line feeds so the value cannot
// start a new mail header, then trims it.
func HeaderValue(s string) string {
	return strings.TrimSpace(headerBreaks.Replace(s))
}

// Contact returns a copy of sub with every visitor field trimmed.
// The honeypot field is trimmed too so whitespace-only values count as empty.
func Contact(sub models.ContactSubmission) models.ContactSubmission {
	return models.ContactSubmission{
		Name:    Text(sub.Name),
		Email:   Text(sub.Email),
		Phone:   Text(sub.Phone),
		Subject: Text(sub.Subject),
		Message: Text(sub.Message),
		Gotcha:  Text(sub.Gotcha),
	}
}
