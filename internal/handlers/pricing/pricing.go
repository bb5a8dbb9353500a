package pricing

import (
	"net/http"

	"github.com/a-h/templ"

	"Reportly/internal/ui"
)

// Handler serves the standalone pricing page.
func Handler(w http.ResponseWriter, r *http.Request) {
	templ.Handler(ui.Pricing()).ServeHTTP(w, r)
}
