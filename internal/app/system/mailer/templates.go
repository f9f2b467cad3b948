// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/dalemusser/portfolio/internal/app/system/htmlsanitize"
	"github.com/dalemusser/portfolio/internal/domain/models"
)

// SubjectPrefix marks contact mail in the owner's inbox.
const SubjectPrefix = "[Portfolio]"

// ContactSubject formats the subject line for a submission.
func ContactSubject(sub models.ContactSubmission) string {
	return fmt.Sprintf("%s %s — %s", SubjectPrefix, sub.Subject, sub.Name)
}

// BuildContactEmail addresses a trimmed, validated submission to the site
// owner with Reply-To set to the visitor.
func BuildContactEmail(sub models.ContactSubmission, cfg Config, messageID string) Email {
	return Email{
		From:      cfg.Sender(),
		FromName:  cfg.FromName,
		To:        cfg.To,
		ReplyTo:   sub.Email,
		Subject:   ContactSubject(sub),
		TextBody:  buildContactText(sub),
		HTMLBody:  buildContactHTML(sub),
		MessageID: messageID,
	}
}

func buildContactText(sub models.ContactSubmission) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Name: %s\n", sub.Name))
	buf.WriteString(fmt.Sprintf("Email: %s\n", sub.Email))
	buf.WriteString(fmt.Sprintf("Phone: %s\n", sub.Phone))
	buf.WriteString("\n")
	buf.WriteString(sub.Message + "\n")
	return buf.String()
}

type contactHTMLData struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message template.HTML
}

var contactHTML = template.Must(template.New("contact").Parse(contactHTMLTemplate))

func buildContactHTML(sub models.ContactSubmission) string {
	data := contactHTMLData{
		Name:    sub.Name,
		Email:   sub.Email,
		Phone:   sub.Phone,
		Subject: sub.Subject,
		Message: template.HTML(htmlsanitize.PlainTextToHTML(sub.Message)),
	}
	var buf bytes.Buffer
	_ = contactHTML.Execute(&buf, data)
	return buf.String()
}

const contactHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Subject}}</title>
</head>
<body style="margin: 0; padding: 24px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 560px; background-color: #ffffff; border-radius: 8px;">
    <tr>
      <td style="padding: 24px; border-bottom: 1px solid #e5e7eb;">
        <p style="margin: 0 0 4px; font-size: 14px; color: #6b7280;">New message from your portfolio</p>
        <h1 style="margin: 0; font-size: 20px; color: #1f2937;">{{.Subject}}</h1>
      </td>
    </tr>
    <tr>
      <td style="padding: 24px; font-size: 14px; color: #374151; line-height: 1.5;">
        <p style="margin: 0;"><strong>Name:</strong> {{.Name}}</p>
        <p style="margin: 0;"><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
        <p style="margin: 0 0 16px;"><strong>Phone:</strong> {{.Phone}}</p>
        {{.Message}}
      </td>
    </tr>
  </table>
</body>
</html>`
