package home

import (
	"net/http"

	"github.com/crewjam/csp"
	"github.com/dalemusser/portfolio/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Site viewdata.Site
	// ConnectSrc lists extra origins the page script may call besides 'self'.
	ConnectSrc []string
	Log        *zap.Logger
}

func NewHandler(site viewdata.Site, connectSrc []string, logger *zap.Logger) *Handler {
	return &Handler{
		Site:       site,
		ConnectSrc: connectSrc,
		Log:        logger,
	}
}

// ContentSecurityPolicy returns the policy sent with the page. Scripts,
// styles and images come from this origin only; the contact form may also
// post to the extra connect origins.
func ContentSecurityPolicy(connectSrc []string) string {
	connect := append([]string{"'self'"}, connectSrc...)
	return csp.Header{
		DefaultSrc: []string{"'self'"},
		ConnectSrc: connect,
	}.String()
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		ContactAction string
	}{
		BaseVM:        viewdata.NewBaseVM(r, h.Site, ""),
		ContactAction: "/api/contact",
	}

	w.Header().Set("Content-Security-Policy", ContentSecurityPolicy(h.ConnectSrc))
	templates.Render(w, r, "home", data)
}
