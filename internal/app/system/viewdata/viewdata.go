// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"time"

	"github.com/dalemusser/portfolio/internal/app/system/htmlsanitize"
)

// Site holds the configured identity of the portfolio.
type Site struct {
	Name      string
	Tagline   string
	IntroHTML string // owner-supplied; sanitized before display
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, site, "Page Title"),
//	}
type BaseVM struct {
	// Site settings (from configuration)
	SiteName  string
	Tagline   string
	IntroHTML template.HTML

	// Page context
	Title       string
	CurrentPath string
	Year        int
}

// NewBaseVM builds the common view model for a page.
// An empty title falls back to the site name.
func NewBaseVM(r *http.Request, site Site, title string) BaseVM {
	if title == "" {
		title = site.Name
	}
	return BaseVM{
		SiteName:    site.Name,
		Tagline:     site.Tagline,
		IntroHTML:   htmlsanitize.PrepareForDisplay(site.IntroHTML),
		Title:       title,
		CurrentPath: r.URL.Path,
		Year:        time.Now().Year(),
	}
}
