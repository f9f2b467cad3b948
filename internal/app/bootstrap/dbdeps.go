// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/portfolio/internal/app/system/mailer"
)

// DBDeps holds the back-end dependencies built once at startup.
// The site has no database; the only backend is the SMTP relay.
type DBDeps struct {
	// Mailer is nil when mail settings are incomplete.
	Mailer     mailer.Sender
	MailConfig mailer.Config
}
