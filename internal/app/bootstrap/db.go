// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/portfolio/internal/app/system/mailer"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the backends the handlers depend on. There is no
// database to dial; the SMTP sender is constructed here so that its
// configuration is checked exactly once. The relay itself is contacted
// per submission, not at startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	mailCfg := appCfg.MailConfig()
	deps := DBDeps{MailConfig: mailCfg}

	sender, err := mailer.NewSMTP(mailCfg, logger.Named("mailer"))
	if err != nil {
		// ValidateConfig already refused to start if mail is required.
		logger.Warn("contact relay disabled", zap.Error(err))
		return deps, nil
	}
	deps.Mailer = sender

	logger.Info("contact relay configured",
		zap.String("host", mailCfg.Host),
		zap.Int("port", mailCfg.Port),
		zap.Bool("implicit_tls", mailCfg.ImplicitTLS()),
		zap.String("from", mailCfg.Sender()),
		zap.String("to", mailCfg.To))
	return deps, nil
}

// EnsureSchema sets up indexes or schema as needed. Nothing is stored.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
