package landing

import (
	"net/http"

	"github.com/a-h/templ"

	"Reportly/internal/ui"
)

// Handler serves the public marketing page.
func Handler(w http.ResponseWriter, r *http.Request) {
	templ.Handler(ui.Landing()).ServeHTTP(w, r)
}
