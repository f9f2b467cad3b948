// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/portfolio/internal/app/resources"
	"github.com/dalemusser/portfolio/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after backends are
// built, but before the HTTP handler is built. It registers the shared
// layout templates, which the template engine needs to boot.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	timeouts.Configure(timeouts.Config{
		SMTP: mailTimeout(appCfg),
	})
	logger.Info("timeouts configured", zap.Duration("smtp", timeouts.SMTP()))
	return nil
}
