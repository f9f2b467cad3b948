// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	contactfeature "github.com/dalemusser/portfolio/internal/app/features/contact"
	healthfeature "github.com/dalemusser/portfolio/internal/app/features/health"
	homefeature "github.com/dalemusser/portfolio/internal/app/features/home"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend construction, and any
// Startup hooks have completed. The portfolio boots the template engine
// and mounts the landing page, static assets, and the /api endpoints.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(appCfg, deps, logger), nil
}

// newRouter mounts every feature. It is split from BuildHandler so the
// routing table can be exercised without a template engine.
func newRouter(appCfg AppConfig, deps DBDeps, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// API
	healthHandler := healthfeature.NewHandler(logger)
	r.Mount("/api/health", healthfeature.Routes(healthHandler))

	contactHandler := contactfeature.NewHandler(deps.Mailer, deps.MailConfig, logger.Named("contact"))
	r.Mount("/api/contact", contactfeature.Routes(contactHandler))

	// Landing page
	homeHandler := homefeature.NewHandler(appCfg.Site(), appCfg.CSPConnectSrc, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	return r
}
