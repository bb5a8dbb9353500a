// Package ui renders the site's pages as templ components. Pages are
// assembled from the pre-built sections in sections.go.
package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/markbates/goth"

	"Reportly/internal/db"
)

func page(title, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
	<title>`+templ.EscapeString(title)+`</title>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
	<link href="/static/style.css" rel="stylesheet">
</head>
<body>`+body+`
</body>
</html>`)
		return err
	})
}

// Landing is the public marketing page: hero, features, pricing,
// call-to-action and footer sections in order.
func Landing() templ.Component {
	return page("Reportly", hero()+features()+pricingSection()+callToAction()+footer())
}

// Pricing is the standalone pricing page reusing the pricing section.
func Pricing() templ.Component {
	return page("Pricing - Reportly", pricingSection()+callToAction()+footer())
}

// Report is the signed-in report page.
func Report(user *goth.User, reports []db.Report) templ.Component {
	name := "there"
	if user != nil && user.Name != "" {
		name = user.Name
	}

	body := `
	<div class="container py-4">
		<div class="d-flex justify-content-between align-items-center">
			<h1>Hello, ` + templ.EscapeString(name) + `</h1>
			<span><a href="/logout/google">Sign out</a></span>
		</div>`

	if len(reports) == 0 {
		body += `
		<p class="text-muted">No reports yet. Your first one is a template away.</p>`
	} else {
		body += `
		<table class="table">
			<thead><tr><th>Title</th><th>Status</th></tr></thead>
			<tbody>`
		for _, rep := range reports {
			body += `
			<tr><td>` + templ.EscapeString(rep.Title) + `</td><td>` + templ.EscapeString(rep.Status) + `</td></tr>`
		}
		body += `
			</tbody>
		</table>`
	}

	body += `
		<form method="post" action="/api/report/export">
			<button type="submit" class="btn btn-outline-primary">Export CSV</button>
		</form>
	</div>` + footer()

	return page("Your reports - Reportly", body)
}
